package auth

// Operation is the action a principal wants to perform on a resource
type Operation string

const (
	OpCreate Operation = "create"
	OpRead   Operation = "read"
	OpUpdate Operation = "update"
	OpDelete Operation = "delete"
)

// ResourceKind identifies what kind of record an access check targets
type ResourceKind string

const (
	KindAppointmentRequest ResourceKind = "appointment_request"
	KindAppointment        ResourceKind = "appointment"
	KindAvailabilityBlock  ResourceKind = "availability_block"
	KindCustomer           ResourceKind = "customer"
	KindFile               ResourceKind = "file"
	KindUser               ResourceKind = "user"
	KindPaymentIntent      ResourceKind = "payment_intent"
)

// Resource is the minimal view of a record the guard needs: its kind,
// which tenant it lives in, and which artist (if any) owns it.
type Resource struct {
	Kind     ResourceKind
	TenantID string
	ArtistID string
}

// artistKinds are the record kinds an artist may touch when they own them
var artistKinds = map[ResourceKind]bool{
	KindAppointmentRequest: true,
	KindAppointment:        true,
	KindAvailabilityBlock:  true,
}

// CanAccess decides whether a principal may perform an operation on a
// resource. It is a pure role/ownership predicate; tenant membership is
// checked separately with InTenant so that cross-tenant probes surface
// as NotFound rather than Forbidden.
func CanAccess(p Principal, op Operation, res Resource) bool {
	switch p.Role {
	case RoleAdmin:
		return true
	case RoleArtist:
		return artistKinds[res.Kind] && res.ArtistID != "" && res.ArtistID == p.UserID
	default:
		// Public intake is the only anonymous write surface.
		return op == OpCreate && res.Kind == KindAppointmentRequest
	}
}

// InTenant reports whether a resource belongs to the resolved tenant.
// Callers must translate a false result into NotFound, never Forbidden,
// so existence of foreign records does not leak.
func InTenant(tenantID string, res Resource) bool {
	return tenantID != "" && res.TenantID == tenantID
}
