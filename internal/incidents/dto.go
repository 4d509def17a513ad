package incidents

import (
	"encoding/json"

	"fixitfast_technician/platform/apperr"
	"fixitfast_technician/platform/validator"
)

// incidentDTO is the wire shape of one incident record. Only the identity
// fields are mandatory; everything else opts into an empty default.
type incidentDTO struct {
	ID        int        `json:"id" validate:"required"`
	Title     string     `json:"title"`
	Status    string     `json:"status"`
	Priority  string     `json:"priority"`
	CreatedOn string     `json:"createdon"`
	DriveTime string     `json:"driveTime"`
	ImageLink string     `json:"imageLink"`
	Notes     string     `json:"notes"`
	Contact   contactDTO `json:"contact"`
}

type contactDTO struct {
	Name       string `json:"name"`
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
}

type incidentListDTO struct {
	Items []incidentDTO `json:"items"`
}

func (d *incidentDTO) toIncident() Incident {
	driveTime := d.DriveTime
	if driveTime == "" {
		driveTime = "Unknown"
	}
	return Incident{
		ID:              d.ID,
		Title:           d.Title,
		Status:          d.Status,
		Priority:        d.Priority,
		CreatedOn:       parseCreatedOn(d.CreatedOn),
		CreatedOnText:   d.CreatedOn,
		CustomerName:    d.Contact.Name,
		Street:          d.Contact.Street,
		City:            d.Contact.City,
		PostalCode:      d.Contact.PostalCode,
		RemoteImageLink: d.ImageLink,
		DrivingTime:     driveTime,
		Notes:           ParseNotes(d.Notes),
	}
}

// decodeIncidentList decodes a list response body. Records failing the
// boundary checks are skipped, not fatal, so one malformed record cannot
// blank the whole list.
func decodeIncidentList(payload string, val *validator.Validator) ([]Incident, []error) {
	var list incidentListDTO
	if err := json.Unmarshal([]byte(payload), &list); err != nil {
		return nil, []error{apperr.Wrap(apperr.KindValidation, "malformed incident list", err)}
	}

	incidents := make([]Incident, 0, len(list.Items))
	var skipped []error
	for i := range list.Items {
		if err := val.Struct(&list.Items[i]); err != nil {
			skipped = append(skipped, apperr.Wrap(apperr.KindValidation, "invalid incident record", err))
			continue
		}
		incidents = append(incidents, list.Items[i].toIncident())
	}
	return incidents, skipped
}

// decodeIncident decodes a single incident response body.
func decodeIncident(payload string, val *validator.Validator) (*Incident, error) {
	var dto incidentDTO
	if err := json.Unmarshal([]byte(payload), &dto); err != nil {
		return nil, apperr.Wrap(apperr.KindValidation, "malformed incident", err)
	}
	if err := val.Struct(&dto); err != nil {
		return nil, apperr.Wrap(apperr.KindValidation, "invalid incident record", err)
	}
	incident := dto.toIncident()
	return &incident, nil
}
