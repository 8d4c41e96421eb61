package hostdoc

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/danieljhkim/combos/internal/combo"
	"github.com/google/uuid"
)

var (
	// ErrElementNotFound is returned when no element has the requested id.
	ErrElementNotFound = errors.New("element not found")

	// ErrNoLocation is returned when an element cannot anchor a placement
	// because it has no point location.
	ErrNoLocation = errors.New("element does not have a point location")
)

// Element is an existing element in the document.
type Element struct {
	ID    string `json:"id"`
	Label string `json:"label"`

	// Location is nil for elements without a point location.
	Location *combo.Point `json:"location"`
}

// String renders the element for selection lists.
func (e Element) String() string {
	if e.Location == nil {
		return fmt.Sprintf("%s (no location)", e.Label)
	}
	return fmt.Sprintf("%s %s", e.Label, e.Location)
}

type dbElement struct {
	ID          string  `db:"id"`
	Label       string  `db:"label"`
	HasLocation bool    `db:"has_location"`
	X           float64 `db:"x"`
	Y           float64 `db:"y"`
	Z           float64 `db:"z"`
}

func toElement(row dbElement) Element {
	e := Element{ID: row.ID, Label: row.Label}
	if row.HasLocation {
		e.Location = &combo.Point{X: row.X, Y: row.Y, Z: row.Z}
	}
	return e
}

// AddElement inserts an element. A nil at creates an element without a point
// location.
func (d *Document) AddElement(label string, at *combo.Point) (Element, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return Element{}, errors.New("element needs a label")
	}

	id, err := uuid.NewV7()
	if err != nil {
		return Element{}, fmt.Errorf("generating uuid: %w", err)
	}

	row := dbElement{ID: id.String(), Label: label}
	if at != nil {
		row.HasLocation = true
		row.X, row.Y, row.Z = at.X, at.Y, at.Z
	}

	query := `INSERT INTO element (id, label, has_location, x, y, z)
	          VALUES (:id, :label, :has_location, :x, :y, :z)`
	if _, err := d.dbConn.NamedExec(query, row); err != nil {
		return Element{}, fmt.Errorf("adding element %s: %w", label, err)
	}

	return toElement(row), nil
}

// ListElements returns every element ordered by label.
func (d *Document) ListElements() ([]Element, error) {
	var rows []dbElement
	query := `SELECT id, label, has_location, x, y, z FROM element ORDER BY label, id`
	if err := d.dbConn.Select(&rows, query); err != nil {
		return nil, fmt.Errorf("retrieving elements: %w", err)
	}

	elements := make([]Element, len(rows))
	for i, row := range rows {
		elements[i] = toElement(row)
	}
	return elements, nil
}

// GetElement returns the element with id.
func (d *Document) GetElement(id string) (Element, error) {
	var row dbElement
	query := `SELECT id, label, has_location, x, y, z FROM element WHERE id = ?`
	if err := d.dbConn.Get(&row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Element{}, fmt.Errorf("%w: %s", ErrElementNotFound, id)
		}
		return Element{}, fmt.Errorf("retrieving element %s: %w", id, err)
	}
	return toElement(row), nil
}

// AnchorFor returns the point location of the element with id.
func (d *Document) AnchorFor(id string) (combo.Point, error) {
	e, err := d.GetElement(id)
	if err != nil {
		return combo.Point{}, err
	}
	if e.Location == nil {
		return combo.Point{}, fmt.Errorf("%w: %s", ErrNoLocation, e.Label)
	}
	return *e.Location, nil
}
