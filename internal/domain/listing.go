package domain

import "time"

// ListingStatus enumerates moderation/lifecycle states for listings.
// Values are the French labels persisted by the platform.
type ListingStatus string

const (
	ListingStatusPending   ListingStatus = "en attente"
	ListingStatusAvailable ListingStatus = "disponible"
	ListingStatusRefused   ListingStatus = "refusée"
	ListingStatusHidden    ListingStatus = "masquée"
	ListingStatusExpired   ListingStatus = "expirée"
	ListingStatusReserved  ListingStatus = "réservé"
	ListingStatusSold      ListingStatus = "vendu"
)

// Legacy status values still present in older records. They are folded to
// canonical values on every read and filter path, never written back.
const (
	listingStatusValidated  ListingStatus = "validée"
	listingStatusPublished  ListingStatus = "publiée"
	listingStatusReservedF  ListingStatus = "réservée"
	listingStatusSoldF      ListingStatus = "vendue"
)

var listingStatusAliases = map[ListingStatus]ListingStatus{
	listingStatusValidated: ListingStatusAvailable,
	listingStatusPublished: ListingStatusAvailable,
	listingStatusReservedF: ListingStatusReserved,
	listingStatusSoldF:     ListingStatusSold,
}

// NormalizeListingStatus folds legacy aliases to their canonical value.
func NormalizeListingStatus(status ListingStatus) ListingStatus {
	if canonical, ok := listingStatusAliases[status]; ok {
		return canonical
	}
	return status
}

// ListingStatusMatches reports whether a stored status matches a canonical
// filter value, accounting for legacy aliases.
func ListingStatusMatches(stored, filter ListingStatus) bool {
	return NormalizeListingStatus(stored) == NormalizeListingStatus(filter)
}

// ExpandListingStatus returns every stored value that folds to the given
// canonical status, for use in SQL IN clauses.
func ExpandListingStatus(canonical ListingStatus) []ListingStatus {
	values := []ListingStatus{canonical}
	for alias, target := range listingStatusAliases {
		if target == canonical {
			values = append(values, alias)
		}
	}
	return values
}

var listingTransitions = map[ListingStatus][]ListingStatus{
	ListingStatusPending:   {ListingStatusAvailable, ListingStatusRefused},
	ListingStatusAvailable: {ListingStatusHidden, ListingStatusReserved, ListingStatusExpired},
	ListingStatusReserved:  {ListingStatusSold},
	ListingStatusSold:      {},
	ListingStatusRefused:   {},
	ListingStatusHidden:    {},
	ListingStatusExpired:   {},
}

// CanTransitionListing reports whether a moderation action may move a listing
// from its current status to next. Aliases are normalized before the check.
func CanTransitionListing(current, next ListingStatus) bool {
	for _, candidate := range listingTransitions[NormalizeListingStatus(current)] {
		if candidate == NormalizeListingStatus(next) {
			return true
		}
	}
	return false
}

// IsValidListingStatus reports whether the value is an acceptable stored
// status, canonical or legacy.
func IsValidListingStatus(status ListingStatus) bool {
	switch NormalizeListingStatus(status) {
	case ListingStatusPending, ListingStatusAvailable, ListingStatusRefused,
		ListingStatusHidden, ListingStatusExpired, ListingStatusReserved, ListingStatusSold:
		return true
	}
	return false
}

// Listing is a real-estate classified ad.
type Listing struct {
	ID           string
	Title        string
	Description  string
	Price        int64
	PropertyType string
	City         string
	District     string
	Images       []string
	Status       ListingStatus
	CreatedBy    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
