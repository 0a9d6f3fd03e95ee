// Package authz is the ownership gate shared by all contexts.
//
// Policies are an explicit decision table over (action, resource kind) instead
// of per-model policy objects resolved at runtime. Creation is not decided
// here: donation creation is gated by authentication alone in the workflow.
package authz

type Action string

const (
	ActionView   Action = "view"
	ActionList   Action = "list"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

type ResourceKind string

const (
	KindCampaign ResourceKind = "campaign"
	KindDonation ResourceKind = "donation"
)

// Resource identifies a protected record and its owning user.
type Resource struct {
	Kind    ResourceKind
	OwnerID string
}

func Campaign(ownerID string) Resource {
	return Resource{Kind: KindCampaign, OwnerID: ownerID}
}

func Donation(donorID string) Resource {
	return Resource{Kind: KindDonation, OwnerID: donorID}
}

// CanPerform reports whether principalID may perform action on resource.
// An empty principalID is an anonymous caller.
func CanPerform(principalID string, action Action, resource Resource) bool {
	switch resource.Kind {
	case KindCampaign:
		switch action {
		case ActionView, ActionList:
			return true
		case ActionUpdate, ActionDelete:
			return principalID != "" && principalID == resource.OwnerID
		default:
			return false
		}
	case KindDonation:
		// Donors may view their own donation; everything else stays closed.
		if action == ActionView {
			return principalID != "" && principalID == resource.OwnerID
		}
		return false
	default:
		return false
	}
}
