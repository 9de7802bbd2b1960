package importer

import (
	"encoding/json"
	"errors"
	"time"

	"list-manager/feature/lists/models"

	"github.com/google/uuid"
)

// SchemaVersion is the current export schema version.
const SchemaVersion = "1.0"

// ExportData is the root of the structured wire format. Dates are ISO-8601
// and image payloads are base64, both handled by encoding/json.
type ExportData struct {
	Version    string       `json:"version"`
	ExportDate time.Time    `json:"exportDate"`
	Lists      []ExportList `json:"lists"`
}

// ExportList is the wire form of a list.
type ExportList struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	OrderNumber int          `json:"orderNumber"`
	IsArchived  bool         `json:"isArchived"`
	CreatedAt   time.Time    `json:"createdAt"`
	ModifiedAt  time.Time    `json:"modifiedAt"`
	Items       []ExportItem `json:"items"`
}

// ExportItem is the wire form of an item.
type ExportItem struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	Description  *string       `json:"description,omitempty"`
	Quantity     int           `json:"quantity"`
	OrderNumber  int           `json:"orderNumber"`
	IsCrossedOut bool          `json:"isCrossedOut"`
	CreatedAt    time.Time     `json:"createdAt"`
	ModifiedAt   time.Time     `json:"modifiedAt"`
	Images       []ExportImage `json:"images,omitempty"`
}

// ExportImage is the wire form of an image attachment.
type ExportImage struct {
	ID          string    `json:"id"`
	ImageData   []byte    `json:"imageData"`
	OrderNumber int       `json:"orderNumber"`
	CreatedAt   time.Time `json:"createdAt"`
}

// exportEnvelope mirrors ExportData with pointer fields so missing required
// keys can be told apart from zero values.
type exportEnvelope struct {
	Version    *string       `json:"version"`
	ExportDate *time.Time    `json:"exportDate"`
	Lists      *[]ExportList `json:"lists"`
}

// Decode parses a structured payload. It fails with KindInvalidFormat when
// the payload is not well-formed JSON, and with KindDecodingFailed when
// required fields are missing or a field has the wrong type.
func Decode(raw []byte) (*ExportData, error) {
	if !json.Valid(raw) {
		return nil, newError(KindInvalidFormat, "payload is not well-formed JSON")
	}

	var env exportEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, wrapError(KindDecodingFailed, err, "field %q: expected %s, got %s",
				typeErr.Field, typeErr.Type, typeErr.Value)
		}
		return nil, wrapError(KindDecodingFailed, err, "payload could not be decoded")
	}

	if env.Version == nil {
		return nil, newError(KindDecodingFailed, "missing required field %q", "version")
	}
	if env.ExportDate == nil {
		return nil, newError(KindDecodingFailed, "missing required field %q", "exportDate")
	}
	if env.Lists == nil {
		return nil, newError(KindDecodingFailed, "missing required field %q", "lists")
	}

	data := &ExportData{
		Version:    *env.Version,
		ExportDate: *env.ExportDate,
		Lists:      *env.Lists,
	}

	if err := checkIDs(data); err != nil {
		return nil, err
	}

	return data, nil
}

// checkIDs verifies that every entity ID parses as a UUID.
func checkIDs(data *ExportData) error {
	for _, list := range data.Lists {
		if _, err := uuid.Parse(list.ID); err != nil {
			return wrapError(KindDecodingFailed, err, "list %q: id %q is not a valid UUID", list.Name, list.ID)
		}
		for _, item := range list.Items {
			if _, err := uuid.Parse(item.ID); err != nil {
				return wrapError(KindDecodingFailed, err, "item %q: id %q is not a valid UUID", item.Title, item.ID)
			}
			for _, img := range item.Images {
				if _, err := uuid.Parse(img.ID); err != nil {
					return wrapError(KindDecodingFailed, err, "image on item %q: id %q is not a valid UUID", item.Title, img.ID)
				}
			}
		}
	}
	return nil
}

// Encode serializes an ExportData graph. Encoding a valid in-memory graph
// cannot fail, so no error is returned.
func Encode(data *ExportData) []byte {
	out, _ := json.MarshalIndent(data, "", "  ")
	return out
}

// ToModels converts the wire graph into store models. Image payloads are
// carried in ItemImage.Data for the commit phase.
func (e *ExportData) ToModels() []models.List {
	out := make([]models.List, 0, len(e.Lists))
	for _, wl := range e.Lists {
		list := models.List{
			ID:          wl.ID,
			Name:        wl.Name,
			OrderNumber: wl.OrderNumber,
			IsArchived:  wl.IsArchived,
			CreatedAt:   wl.CreatedAt,
			ModifiedAt:  wl.ModifiedAt,
		}
		for _, wi := range wl.Items {
			item := models.Item{
				ID:           wi.ID,
				ListID:       wl.ID,
				Title:        wi.Title,
				Description:  wi.Description,
				Quantity:     wi.Quantity,
				OrderNumber:  wi.OrderNumber,
				IsCrossedOut: wi.IsCrossedOut,
				CreatedAt:    wi.CreatedAt,
				ModifiedAt:   wi.ModifiedAt,
			}
			for _, wimg := range wi.Images {
				item.Images = append(item.Images, models.ItemImage{
					ID:          wimg.ID,
					ItemID:      wi.ID,
					OrderNumber: wimg.OrderNumber,
					CreatedAt:   wimg.CreatedAt,
					Data:        wimg.ImageData,
				})
			}
			list.Items = append(list.Items, item)
		}
		out = append(out, list)
	}
	return out
}

// FromModels converts store models into the wire graph. Image payloads must
// already be loaded into ItemImage.Data.
func FromModels(lists []models.List, exportDate time.Time) *ExportData {
	data := &ExportData{
		Version:    SchemaVersion,
		ExportDate: exportDate,
		Lists:      make([]ExportList, 0, len(lists)),
	}
	for _, l := range lists {
		wl := ExportList{
			ID:          l.ID,
			Name:        l.Name,
			OrderNumber: l.OrderNumber,
			IsArchived:  l.IsArchived,
			CreatedAt:   l.CreatedAt,
			ModifiedAt:  l.ModifiedAt,
			Items:       []ExportItem{},
		}
		for _, it := range l.Items {
			wi := ExportItem{
				ID:           it.ID,
				Title:        it.Title,
				Description:  it.Description,
				Quantity:     it.Quantity,
				OrderNumber:  it.OrderNumber,
				IsCrossedOut: it.IsCrossedOut,
				CreatedAt:    it.CreatedAt,
				ModifiedAt:   it.ModifiedAt,
			}
			for _, img := range it.Images {
				wi.Images = append(wi.Images, ExportImage{
					ID:          img.ID,
					ImageData:   img.Data,
					OrderNumber: img.OrderNumber,
					CreatedAt:   img.CreatedAt,
				})
			}
			wl.Items = append(wl.Items, wi)
		}
		data.Lists = append(data.Lists, wl)
	}
	return data
}
