package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"roam-backend/internal/domain/model"
	"roam-backend/internal/domain/repository"
	"roam-backend/internal/infrastructure/database"
)

type PostgresVenuesRepository struct {
	client *database.PostgreSQLClient
}

func NewPostgresVenuesRepository(client *database.PostgreSQLClient) repository.VenuesRepository {
	return &PostgresVenuesRepository{
		client: client,
	}
}

const venueColumns = `id, name, slug, lat, lon, link, type, tags, vibe, price,
	hours_numeric, day_parts, time_category, duration, neighborhood`

func (r *PostgresVenuesRepository) FindAll(ctx context.Context) ([]*model.Venue, error) {
	query := fmt.Sprintf("SELECT %s FROM venues", venueColumns)

	rows, err := r.client.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query venues: %w", err)
	}
	defer rows.Close()

	return scanVenues(rows)
}

func (r *PostgresVenuesRepository) FindByCity(ctx context.Context, city string) ([]*model.Venue, error) {
	query := fmt.Sprintf("SELECT %s FROM venues WHERE city = $1", venueColumns)

	rows, err := r.client.DB.QueryContext(ctx, query, city)
	if err != nil {
		return nil, fmt.Errorf("failed to query venues by city: %w", err)
	}
	defer rows.Close()

	return scanVenues(rows)
}

func scanVenues(rows *sql.Rows) ([]*model.Venue, error) {
	var venues []*model.Venue

	for rows.Next() {
		var (
			v            model.Venue
			slugCol      sql.NullString
			link         sql.NullString
			typeCol      sql.NullString
			tags         sql.NullString
			vibe         sql.NullString
			price        sql.NullString
			hoursJSON    []byte
			dayPartsJSON []byte
			timeCategory sql.NullString
			duration     sql.NullFloat64
			neighborhood sql.NullString
		)

		err := rows.Scan(
			&v.ID, &v.Name, &slugCol, &v.Lat, &v.Lon, &link, &typeCol,
			&tags, &vibe, &price, &hoursJSON, &dayPartsJSON,
			&timeCategory, &duration, &neighborhood,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan venue row: %w", err)
		}

		v.Slug = slugCol.String
		v.Link = link.String
		v.Type = typeCol.String
		v.Tags = tags.String
		v.Vibe = vibe.String
		v.Price = price.String
		v.TimeCategory = timeCategory.String
		v.Duration = duration.Float64
		v.Neighborhood = neighborhood.String

		if len(hoursJSON) > 0 {
			if err := json.Unmarshal(hoursJSON, &v.HoursNumeric); err != nil {
				return nil, fmt.Errorf("failed to unmarshal hours for venue %s: %w", v.ID, err)
			}
		}
		if len(dayPartsJSON) > 0 {
			if err := json.Unmarshal(dayPartsJSON, &v.DayParts); err != nil {
				return nil, fmt.Errorf("failed to unmarshal day parts for venue %s: %w", v.ID, err)
			}
		}

		venues = append(venues, &v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed while reading venue rows: %w", err)
	}

	return venues, nil
}
