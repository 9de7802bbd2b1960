package importer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testListID  = "11111111-1111-1111-1111-111111111111"
	testItemID  = "22222222-2222-2222-2222-222222222222"
	testImageID = "33333333-3333-3333-3333-333333333333"
)

func validPayload() string {
	return `{
		"version": "1.0",
		"exportDate": "2026-08-25T10:00:00Z",
		"lists": [
			{
				"id": "` + testListID + `",
				"name": "Groceries",
				"orderNumber": 1,
				"isArchived": false,
				"createdAt": "2026-08-25T09:00:00Z",
				"modifiedAt": "2026-08-25T09:30:00Z",
				"items": [
					{
						"id": "` + testItemID + `",
						"title": "Milk",
						"description": "Oat, not dairy",
						"quantity": 2,
						"orderNumber": 0,
						"isCrossedOut": true,
						"createdAt": "2026-08-25T09:00:00Z",
						"modifiedAt": "2026-08-25T09:00:00Z",
						"images": [
							{
								"id": "` + testImageID + `",
								"imageData": "aGVsbG8=",
								"orderNumber": 0,
								"createdAt": "2026-08-25T09:00:00Z"
							}
						]
					}
				]
			}
		]
	}`
}

func TestDecode_ValidPayload(t *testing.T) {
	data, err := Decode([]byte(validPayload()))
	require.NoError(t, err)

	assert.Equal(t, "1.0", data.Version)
	assert.Equal(t, time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC), data.ExportDate)
	require.Len(t, data.Lists, 1)

	list := data.Lists[0]
	assert.Equal(t, "Groceries", list.Name)
	require.Len(t, list.Items, 1)

	item := list.Items[0]
	assert.Equal(t, "Milk", item.Title)
	require.NotNil(t, item.Description)
	assert.Equal(t, "Oat, not dairy", *item.Description)
	assert.Equal(t, 2, item.Quantity)
	assert.True(t, item.IsCrossedOut)
	require.Len(t, item.Images, 1)
	assert.Equal(t, []byte("hello"), item.Images[0].ImageData)
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  Kind
	}{
		{"not well-formed json", `{"version": "1.0",`, KindInvalidFormat},
		{"missing version", `{"exportDate": "2026-08-25T10:00:00Z", "lists": []}`, KindDecodingFailed},
		{"missing exportDate", `{"version": "1.0", "lists": []}`, KindDecodingFailed},
		{"missing lists", `{"version": "1.0", "exportDate": "2026-08-25T10:00:00Z"}`, KindDecodingFailed},
		{"version has wrong type", `{"version": 1, "exportDate": "2026-08-25T10:00:00Z", "lists": []}`, KindDecodingFailed},
		{"lists has wrong type", `{"version": "1.0", "exportDate": "2026-08-25T10:00:00Z", "lists": "nope"}`, KindDecodingFailed},
		{"list id is not a uuid", `{"version": "1.0", "exportDate": "2026-08-25T10:00:00Z", "lists": [{"id": "not-a-uuid", "name": "X"}]}`, KindDecodingFailed},
		{"item id is not a uuid", `{"version": "1.0", "exportDate": "2026-08-25T10:00:00Z", "lists": [{"id": "` + testListID + `", "name": "X", "items": [{"id": "123", "title": "Y", "quantity": 1}]}]}`, KindDecodingFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := Decode([]byte(tt.input))
			assert.Nil(t, data)
			assert.Equal(t, tt.kind, KindOf(err))
		})
	}
}

func TestDecode_NullOptionalDescription(t *testing.T) {
	payload := `{"version": "1.0", "exportDate": "2026-08-25T10:00:00Z", "lists": [
		{"id": "` + testListID + `", "name": "X", "items": [
			{"id": "` + testItemID + `", "title": "Y", "quantity": 1}
		]}
	]}`

	data, err := Decode([]byte(payload))
	require.NoError(t, err)
	assert.Nil(t, data.Lists[0].Items[0].Description, "absent description must stay absent")
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	original, err := Decode([]byte(validPayload()))
	require.NoError(t, err)

	decoded, err := Decode(Encode(original))
	require.NoError(t, err)
	assert.Equal(t, original, decoded)
}

func TestExportData_ToModels(t *testing.T) {
	data, err := Decode([]byte(validPayload()))
	require.NoError(t, err)

	modelLists := data.ToModels()
	require.Len(t, modelLists, 1)
	assert.Equal(t, testListID, modelLists[0].ID)

	require.Len(t, modelLists[0].Items, 1)
	item := modelLists[0].Items[0]
	assert.Equal(t, testListID, item.ListID, "ListID is derived from the parent list")

	require.Len(t, item.Images, 1)
	assert.Equal(t, testItemID, item.Images[0].ItemID)
	assert.Equal(t, []byte("hello"), item.Images[0].Data, "payload bytes travel with the model")
}

func TestFromModels_RoundTripsThroughToModels(t *testing.T) {
	data, err := Decode([]byte(validPayload()))
	require.NoError(t, err)

	exportDate := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	back := FromModels(data.ToModels(), exportDate)

	assert.Equal(t, SchemaVersion, back.Version)
	assert.Equal(t, exportDate, back.ExportDate)
	assert.Equal(t, data.Lists, back.Lists)
}
