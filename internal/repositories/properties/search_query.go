package properties

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/lightbnb/internal/models"
)

// DefaultLimit caps a search when the caller passes a non-positive limit.
const DefaultLimit = 10

const searchSelect = `SELECT ` + Columns + `,
		AVG(property_reviews.rating)::float8 AS average_rating
	FROM properties
	JOIN property_reviews ON property_reviews.property_id = properties.id`

// searchQuery collects bound arguments and the row (WHERE) and group (HAVING)
// predicates separately, so the keyword for each clause is written exactly once
// regardless of which filters are present.
type searchQuery struct {
	args   []any
	where  []string
	having []string
}

// bind appends v to the argument list and returns its placeholder.
func (q *searchQuery) bind(v any) string {
	q.args = append(q.args, v)
	return fmt.Sprintf("$%d", len(q.args))
}

func (q *searchQuery) addWhere(format string, v any) {
	q.where = append(q.where, fmt.Sprintf(format, q.bind(v)))
}

func (q *searchQuery) addHaving(format string, v any) {
	q.having = append(q.having, fmt.Sprintf(format, q.bind(v)))
}

// buildSearchQuery renders the filtered search statement and its arguments.
// Results are grouped per property, sorted by nightly price (then id so that
// equal prices keep a stable order) and limited.
func buildSearchQuery(f models.PropertyFilter, limit int) (string, []any) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	q := &searchQuery{}

	if f.City != "" {
		q.addWhere("properties.city ILIKE %s", containsPattern(f.City))
	}
	if f.OwnerID > 0 {
		q.addWhere("properties.owner_id = %s", f.OwnerID)
	}
	if f.MinimumPricePerNight > 0 {
		q.addWhere("properties.cost_per_night >= %s", int64(models.DollarsToCents(f.MinimumPricePerNight)))
	}
	if f.MaximumPricePerNight > 0 {
		q.addWhere("properties.cost_per_night <= %s", int64(models.DollarsToCents(f.MaximumPricePerNight)))
	}
	if f.MinimumRating > 0 {
		q.addHaving("AVG(property_reviews.rating) >= %s", f.MinimumRating)
	}

	var sb strings.Builder
	sb.WriteString(searchSelect)
	if len(q.where) > 0 {
		sb.WriteString("\n\tWHERE ")
		sb.WriteString(strings.Join(q.where, "\n\t  AND "))
	}
	sb.WriteString("\n\tGROUP BY properties.id")
	if len(q.having) > 0 {
		sb.WriteString("\n\tHAVING ")
		sb.WriteString(strings.Join(q.having, "\n\t  AND "))
	}
	sb.WriteString("\n\tORDER BY properties.cost_per_night ASC, properties.id ASC")
	sb.WriteString("\n\tLIMIT ")
	sb.WriteString(q.bind(limit))

	return sb.String(), q.args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern turns s into a LIKE pattern matching any value containing s
// literally.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
