package auth

import (
	"testing"
)

func TestCanAccess_Admin(t *testing.T) {
	admin := Principal{Role: RoleAdmin, UserID: "user-admin", TenantID: "tenant-1"}

	kinds := []ResourceKind{
		KindAppointmentRequest, KindAppointment, KindAvailabilityBlock,
		KindCustomer, KindFile, KindUser, KindPaymentIntent,
	}
	ops := []Operation{OpCreate, OpRead, OpUpdate, OpDelete}

	for _, kind := range kinds {
		for _, op := range ops {
			res := Resource{Kind: kind, TenantID: "tenant-1", ArtistID: "someone-else"}
			if !CanAccess(admin, op, res) {
				t.Errorf("Expected admin to access %s %s", op, kind)
			}
		}
	}
}

func TestCanAccess_Artist(t *testing.T) {
	artist := Principal{Role: RoleArtist, UserID: "user-artist", TenantID: "tenant-1"}

	tests := []struct {
		name string
		op   Operation
		res  Resource
		want bool
	}{
		{
			name: "own appointment",
			op:   OpRead,
			res:  Resource{Kind: KindAppointment, TenantID: "tenant-1", ArtistID: "user-artist"},
			want: true,
		},
		{
			name: "own availability block delete",
			op:   OpDelete,
			res:  Resource{Kind: KindAvailabilityBlock, TenantID: "tenant-1", ArtistID: "user-artist"},
			want: true,
		},
		{
			name: "own appointment request",
			op:   OpUpdate,
			res:  Resource{Kind: KindAppointmentRequest, TenantID: "tenant-1", ArtistID: "user-artist"},
			want: true,
		},
		{
			name: "another artist's appointment",
			op:   OpRead,
			res:  Resource{Kind: KindAppointment, TenantID: "tenant-1", ArtistID: "other-artist"},
			want: false,
		},
		{
			name: "unowned record",
			op:   OpRead,
			res:  Resource{Kind: KindAppointment, TenantID: "tenant-1"},
			want: false,
		},
		{
			name: "customer list",
			op:   OpRead,
			res:  Resource{Kind: KindCustomer, TenantID: "tenant-1"},
			want: false,
		},
		{
			name: "user directory",
			op:   OpRead,
			res:  Resource{Kind: KindUser, TenantID: "tenant-1"},
			want: false,
		},
		{
			name: "payment intent",
			op:   OpRead,
			res:  Resource{Kind: KindPaymentIntent, TenantID: "tenant-1"},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanAccess(artist, tt.op, tt.res); got != tt.want {
				t.Errorf("CanAccess = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCanAccess_Anonymous(t *testing.T) {
	anon := Anonymous()

	if !CanAccess(anon, OpCreate, Resource{Kind: KindAppointmentRequest, TenantID: "tenant-1"}) {
		t.Error("Expected anonymous intake creation to be allowed")
	}

	denied := []struct {
		op  Operation
		res Resource
	}{
		{OpRead, Resource{Kind: KindAppointmentRequest, TenantID: "tenant-1"}},
		{OpUpdate, Resource{Kind: KindAppointmentRequest, TenantID: "tenant-1"}},
		{OpCreate, Resource{Kind: KindAppointment, TenantID: "tenant-1"}},
		{OpRead, Resource{Kind: KindCustomer, TenantID: "tenant-1"}},
		{OpDelete, Resource{Kind: KindAvailabilityBlock, TenantID: "tenant-1"}},
	}
	for _, tt := range denied {
		if CanAccess(anon, tt.op, tt.res) {
			t.Errorf("Expected anonymous %s on %s to be denied", tt.op, tt.res.Kind)
		}
	}
}

func TestInTenant(t *testing.T) {
	res := Resource{Kind: KindAppointment, TenantID: "tenant-1"}

	if !InTenant("tenant-1", res) {
		t.Error("Expected same-tenant resource to pass")
	}
	if InTenant("tenant-2", res) {
		t.Error("Expected cross-tenant resource to fail")
	}
	if InTenant("", res) {
		t.Error("Expected empty tenant scope to fail")
	}
}
