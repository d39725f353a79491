package properties

import "github.com/dmitrijs2005/lightbnb/internal/models"

// Columns lists the properties columns in the order ScanTargets expects.
// description is nullable in the schema and is read as an empty string.
const Columns = `properties.id, properties.owner_id, properties.title,
		COALESCE(properties.description, '') AS description,
		properties.thumbnail_photo_url, properties.cover_photo_url, properties.cost_per_night,
		properties.street, properties.city, properties.province, properties.post_code, properties.country,
		properties.parking_spaces, properties.number_of_bathrooms, properties.number_of_bedrooms`

// ScanTargets returns the destinations for the columns listed in Columns.
func ScanTargets(p *models.Property) []any {
	return []any{
		&p.ID, &p.OwnerID, &p.Title,
		&p.Description,
		&p.ThumbnailPhotoURL, &p.CoverPhotoURL, &p.CostPerNight,
		&p.Street, &p.City, &p.Province, &p.PostCode, &p.Country,
		&p.ParkingSpaces, &p.NumberOfBathrooms, &p.NumberOfBedrooms,
	}
}
