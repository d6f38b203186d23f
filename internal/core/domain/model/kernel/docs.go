// Package kernel provides the primitives shared by every aggregate of the
// parcel booking domain: the UUID surrogate key and the authenticated
// Principal with its Role.
package kernel
