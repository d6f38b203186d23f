package ports_test

import (
	"math"
	"testing"

	"parcel/internal/core/ports"

	"github.com/stretchr/testify/assert"
)

func TestPageRequest_Offset(t *testing.T) {
	tests := []struct {
		name string
		page ports.PageRequest
		want int
	}{
		{name: "first page", page: ports.PageRequest{Index: 0, Size: 10}, want: 0},
		{name: "third page", page: ports.PageRequest{Index: 2, Size: 10}, want: 20},
		{name: "negative index", page: ports.PageRequest{Index: -1, Size: 10}, want: 0},
		{name: "no size", page: ports.PageRequest{Index: 3, Size: 0}, want: 0},
		{name: "largest exact", page: ports.PageRequest{Index: math.MaxInt / 10, Size: 10}, want: math.MaxInt / 10 * 10},
		{name: "overflow saturates", page: ports.PageRequest{Index: math.MaxInt/10 + 1, Size: 10}, want: math.MaxInt},
		{name: "max index", page: ports.PageRequest{Index: math.MaxInt, Size: 2}, want: math.MaxInt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.page.Offset())
		})
	}
}
