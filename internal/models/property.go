package models

// Property is a row of the properties table.
type Property struct {
	ID                int64  `json:"id"`
	OwnerID           int64  `json:"owner_id"`
	Title             string `json:"title"`
	Description       string `json:"description"`
	ThumbnailPhotoURL string `json:"thumbnail_photo_url"`
	CoverPhotoURL     string `json:"cover_photo_url"`
	CostPerNight      Cents  `json:"cost_per_night"`
	Street            string `json:"street"`
	City              string `json:"city"`
	Province          string `json:"province"`
	PostCode          string `json:"post_code"`
	Country           string `json:"country"`
	ParkingSpaces     int    `json:"parking_spaces"`
	NumberOfBathrooms int    `json:"number_of_bathrooms"`
	NumberOfBedrooms  int    `json:"number_of_bedrooms"`
}

// NewProperty carries the fourteen insertable columns of a property.
type NewProperty struct {
	OwnerID           int64  `json:"owner_id" validate:"required,gt=0"`
	Title             string `json:"title" validate:"required"`
	Description       string `json:"description"`
	ThumbnailPhotoURL string `json:"thumbnail_photo_url" validate:"omitempty,url"`
	CoverPhotoURL     string `json:"cover_photo_url" validate:"omitempty,url"`
	CostPerNight      Cents  `json:"cost_per_night" validate:"gte=0,lte=2147483647"`
	Street            string `json:"street" validate:"required"`
	City              string `json:"city" validate:"required"`
	Province          string `json:"province" validate:"required"`
	PostCode          string `json:"post_code" validate:"required"`
	Country           string `json:"country" validate:"required"`
	ParkingSpaces     int    `json:"parking_spaces" validate:"gte=0"`
	NumberOfBathrooms int    `json:"number_of_bathrooms" validate:"gte=0"`
	NumberOfBedrooms  int    `json:"number_of_bedrooms" validate:"gte=0"`
}

// PropertyListing is a property as returned by search, with the average of
// its review ratings.
type PropertyListing struct {
	Property
	AverageRating float64 `json:"average_rating"`
}

// PropertyFilter narrows a property search. Zero values mean "no filter".
// Price bounds are whole currency units, at most MaxDollars; see DollarsToCents.
type PropertyFilter struct {
	City                 string  `json:"city"`
	MinimumPricePerNight int64   `json:"minimum_price_per_night" validate:"gte=0,lte=21474836"`
	MaximumPricePerNight int64   `json:"maximum_price_per_night" validate:"gte=0,lte=21474836"`
	MinimumRating        float64 `json:"minimum_rating" validate:"gte=0,lte=5"`
	OwnerID              int64   `json:"owner_id" validate:"gte=0"`
}
