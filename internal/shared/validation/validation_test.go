package validation

import "testing"

func TestErrIsNilWithoutFailures(t *testing.T) {
	if err := NewError().Err(); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestMessageIsFirstRecordedFailure(t *testing.T) {
	v := NewError().
		Add("amount", "The amount must be at least 1.").
		Add("campaign_id", "The campaign id field is required.")
	if got := v.Message(); got != "The amount must be at least 1." {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestFieldsAccumulatePerField(t *testing.T) {
	v := NewError().
		Add("email", "The email field is required.").
		Add("email", "The email must be a valid email address.")
	fields := v.Fields()
	if len(fields["email"]) != 2 {
		t.Fatalf("expected 2 email messages, got %d", len(fields["email"]))
	}
}

func TestFieldsReturnsCopy(t *testing.T) {
	v := NewError().Add("title", "The title field is required.")
	fields := v.Fields()
	fields["title"] = append(fields["title"], "mutated")
	if len(v.Fields()["title"]) != 1 {
		t.Fatal("mutating the copy must not affect the error")
	}
}
