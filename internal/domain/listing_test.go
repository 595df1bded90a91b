package domain

import "testing"

func TestNormalizeListingStatus(t *testing.T) {
	tests := []struct {
		name  string
		input ListingStatus
		want  ListingStatus
	}{
		{"canonical untouched", ListingStatusAvailable, ListingStatusAvailable},
		{"pending untouched", ListingStatusPending, ListingStatusPending},
		{"legacy validee", "validée", ListingStatusAvailable},
		{"legacy publiee", "publiée", ListingStatusAvailable},
		{"legacy reservee", "réservée", ListingStatusReserved},
		{"legacy vendue", "vendue", ListingStatusSold},
		{"unknown passes through", "inconnu", "inconnu"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeListingStatus(tt.input); got != tt.want {
				t.Errorf("NormalizeListingStatus(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestListingStatusMatches(t *testing.T) {
	if !ListingStatusMatches("publiée", ListingStatusAvailable) {
		t.Error("legacy publiée should match disponible")
	}
	if !ListingStatusMatches("vendue", "vendu") {
		t.Error("legacy vendue should match vendu")
	}
	if ListingStatusMatches(ListingStatusPending, ListingStatusAvailable) {
		t.Error("en attente should not match disponible")
	}
}

func TestExpandListingStatus(t *testing.T) {
	values := ExpandListingStatus(ListingStatusAvailable)
	want := map[ListingStatus]bool{
		ListingStatusAvailable: false,
		"validée":              false,
		"publiée":              false,
	}
	if len(values) != len(want) {
		t.Fatalf("expected %d values, got %d: %v", len(want), len(values), values)
	}
	for _, v := range values {
		if _, ok := want[v]; !ok {
			t.Errorf("unexpected expansion value %q", v)
		}
		want[v] = true
	}
	for v, seen := range want {
		if !seen {
			t.Errorf("expansion missing %q", v)
		}
	}

	if got := ExpandListingStatus(ListingStatusPending); len(got) != 1 || got[0] != ListingStatusPending {
		t.Errorf("en attente has no aliases, got %v", got)
	}
}

func TestCanTransitionListing(t *testing.T) {
	tests := []struct {
		name    string
		current ListingStatus
		next    ListingStatus
		want    bool
	}{
		{"pending to available", ListingStatusPending, ListingStatusAvailable, true},
		{"pending to refused", ListingStatusPending, ListingStatusRefused, true},
		{"pending to sold", ListingStatusPending, ListingStatusSold, false},
		{"available to hidden", ListingStatusAvailable, ListingStatusHidden, true},
		{"available to reserved", ListingStatusAvailable, ListingStatusReserved, true},
		{"available to expired", ListingStatusAvailable, ListingStatusExpired, true},
		{"available to pending", ListingStatusAvailable, ListingStatusPending, false},
		{"reserved to sold", ListingStatusReserved, ListingStatusSold, true},
		{"reserved to available", ListingStatusReserved, ListingStatusAvailable, false},
		{"sold is terminal", ListingStatusSold, ListingStatusAvailable, false},
		{"refused is terminal", ListingStatusRefused, ListingStatusAvailable, false},
		{"hidden is terminal", ListingStatusHidden, ListingStatusAvailable, false},
		{"legacy current folds", "publiée", ListingStatusReserved, true},
		{"legacy next folds", ListingStatusAvailable, "réservée", true},
		{"legacy both fold", "validée", "réservée", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanTransitionListing(tt.current, tt.next); got != tt.want {
				t.Errorf("CanTransitionListing(%q, %q) = %v, want %v", tt.current, tt.next, got, tt.want)
			}
		})
	}
}

func TestIsValidListingStatus(t *testing.T) {
	for _, status := range []ListingStatus{
		ListingStatusPending, ListingStatusAvailable, ListingStatusRefused,
		ListingStatusHidden, ListingStatusExpired, ListingStatusReserved, ListingStatusSold,
		"validée", "publiée", "réservée", "vendue",
	} {
		if !IsValidListingStatus(status) {
			t.Errorf("expected %q to be valid", status)
		}
	}
	if IsValidListingStatus("inconnu") {
		t.Error("inconnu should not be valid")
	}
}
