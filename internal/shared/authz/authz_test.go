package authz

import "testing"

func TestCampaignOwnerCanMutate(t *testing.T) {
	resource := Campaign("user-1")
	if !CanPerform("user-1", ActionUpdate, resource) {
		t.Fatal("owner should be allowed to update")
	}
	if !CanPerform("user-1", ActionDelete, resource) {
		t.Fatal("owner should be allowed to delete")
	}
}

func TestCampaignNonOwnerCannotMutate(t *testing.T) {
	resource := Campaign("user-1")
	if CanPerform("user-2", ActionUpdate, resource) {
		t.Fatal("non-owner must not update")
	}
	if CanPerform("user-2", ActionDelete, resource) {
		t.Fatal("non-owner must not delete")
	}
}

func TestCampaignViewIsPublic(t *testing.T) {
	resource := Campaign("user-1")
	if !CanPerform("", ActionView, resource) {
		t.Fatal("anonymous view should be allowed")
	}
	if !CanPerform("user-2", ActionList, resource) {
		t.Fatal("list should be allowed for anyone")
	}
}

func TestDonationVisibleToDonorOnly(t *testing.T) {
	resource := Donation("donor-1")
	if !CanPerform("donor-1", ActionView, resource) {
		t.Fatal("donor should see own donation")
	}
	if CanPerform("donor-2", ActionView, resource) {
		t.Fatal("other users must not see the donation")
	}
	if CanPerform("", ActionView, resource) {
		t.Fatal("anonymous must not see the donation")
	}
}

func TestDonationMutationsDenied(t *testing.T) {
	resource := Donation("donor-1")
	if CanPerform("donor-1", ActionUpdate, resource) {
		t.Fatal("donations are immutable")
	}
	if CanPerform("donor-1", ActionDelete, resource) {
		t.Fatal("donations are not deletable")
	}
}
