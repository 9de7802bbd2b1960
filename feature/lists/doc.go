// Package lists implements the list storage feature.
//
// It owns the Lists/Items/ItemImages schema and exposes the Store interface,
// the narrow CRUD surface every other part of the application persists
// through. Image payload bytes are not stored here; rows carry metadata and
// the payload lives in object storage (see core/storage).
//
// # Components
//
//   - Store / GormStore: find, create, update, delete operations plus
//     transactional grouping. The importer applies whole change-sets through
//     Store.Transaction so a failed import never leaves partial rows.
//   - Service: thin orchestration over the store.
//   - Handler: read-mostly HTTP endpoints for browsing lists.
//
// # HTTP Endpoints
//
//   - GET  /lists       : all lists with items
//   - GET  /lists/:id   : one list
//   - POST /lists       : create an empty list
package lists
