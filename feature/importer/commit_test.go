package importer

import (
	"context"
	"errors"
	"testing"

	"list-manager/core/database"
	"list-manager/core/storage/mocks"
	"list-manager/feature/lists"
	"list-manager/feature/lists/models"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testBucket = "lists"

func setupStore(t *testing.T) lists.Store {
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	if err != nil {
		t.Fatalf("Failed to open sqlite db: %v", err)
	}
	if err := lists.Migrate(db); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}
	return lists.NewStore(db)
}

func emptyObjectChannel() <-chan minio.ObjectInfo {
	ch := make(chan minio.ObjectInfo)
	close(ch)
	return ch
}

func emptyRemoveErrorChannel() <-chan minio.RemoveObjectError {
	ch := make(chan minio.RemoveObjectError)
	close(ch)
	return ch
}

func TestCoordinator_Commit_CreatesRowsAndUploadsPayloads(t *testing.T) {
	store := setupStore(t)
	client := new(mocks.Client)
	coord := NewCoordinator(store, client, testBucket, zap.NewNop())

	img := models.ItemImage{ID: testImageID, ItemID: testItemID, Data: []byte("payload")}
	cs := &ChangeSet{
		Strategy:       MergeMerge,
		ListsToCreate:  []models.List{{ID: testListID, Name: "Groceries"}},
		ItemsToCreate:  []models.Item{{ID: testItemID, ListID: testListID, Title: "Milk", Quantity: 1}},
		ImagesToCreate: []models.ItemImage{img},
	}

	client.On("PutObject", mock.Anything, testBucket, img.ObjectKey(), mock.Anything, int64(7), mock.Anything).
		Return(minio.UploadInfo{}, nil)

	require.NoError(t, coord.Commit(context.Background(), cs))
	client.AssertExpectations(t)

	all, err := store.FindAllLists(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.Len(t, all[0].Items, 1)
	assert.Len(t, all[0].Items[0].Images, 1)
}

func TestCoordinator_Commit_AppliesUpdates(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()
	require.NoError(t, store.CreateList(ctx, &models.List{ID: testListID, Name: "Old"}))
	require.NoError(t, store.CreateItem(ctx, &models.Item{ID: testItemID, ListID: testListID, Title: "Old Item", Quantity: 1}))

	coord := NewCoordinator(store, new(mocks.Client), testBucket, zap.NewNop())
	cs := &ChangeSet{
		Strategy:      MergeMerge,
		ListsToUpdate: []models.List{{ID: testListID, Name: "New"}},
		ItemsToUpdate: []models.Item{{ID: testItemID, Title: "New Item", Quantity: 3}},
	}

	require.NoError(t, coord.Commit(ctx, cs))

	got, err := store.FindList(ctx, testListID)
	require.NoError(t, err)
	assert.Equal(t, "New", got.Name)
	assert.Equal(t, "New Item", got.Items[0].Title)
	assert.Equal(t, 3, got.Items[0].Quantity)
}

func TestCoordinator_Commit_ReplaceDeletesBeforeCreating(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()
	require.NoError(t, store.CreateList(ctx, &models.List{ID: testListID, Name: "Old"}))

	client := new(mocks.Client)
	coord := NewCoordinator(store, client, testBucket, zap.NewNop())

	newListID := "44444444-4444-4444-4444-444444444444"
	cs := &ChangeSet{
		Strategy:      MergeReplace,
		DeleteAll:     true,
		ListsToCreate: []models.List{{ID: newListID, Name: "New"}},
	}

	// After the transaction commits, stale image objects are purged.
	staleKey := models.ImageObjectPrefix + "stale.bin"
	listCh := make(chan minio.ObjectInfo, 1)
	listCh <- minio.ObjectInfo{Key: staleKey}
	close(listCh)
	client.On("ListObjects", mock.Anything, testBucket, mock.Anything).
		Return((<-chan minio.ObjectInfo)(listCh))

	var removed []string
	client.On("RemoveObjects", mock.Anything, testBucket, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			for obj := range args.Get(2).(<-chan minio.ObjectInfo) {
				removed = append(removed, obj.Key)
			}
		}).
		Return(emptyRemoveErrorChannel())

	require.NoError(t, coord.Commit(ctx, cs))
	client.AssertExpectations(t)

	all, err := store.FindAllLists(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "New", all[0].Name)

	assert.Equal(t, []string{staleKey}, removed)
}

func TestCoordinator_Commit_ReplacePurgeKeepsNewPayloads(t *testing.T) {
	store := setupStore(t)
	client := new(mocks.Client)
	coord := NewCoordinator(store, client, testBucket, zap.NewNop())

	img := models.ItemImage{ID: testImageID, ItemID: testItemID, Data: []byte("new")}
	cs := &ChangeSet{
		Strategy:       MergeReplace,
		DeleteAll:      true,
		ListsToCreate:  []models.List{{ID: testListID, Name: "New"}},
		ItemsToCreate:  []models.Item{{ID: testItemID, ListID: testListID, Title: "Milk", Quantity: 1}},
		ImagesToCreate: []models.ItemImage{img},
	}

	client.On("PutObject", mock.Anything, testBucket, img.ObjectKey(), mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil)

	// The freshly uploaded object is listed but must not be removed.
	listCh := make(chan minio.ObjectInfo, 2)
	listCh <- minio.ObjectInfo{Key: img.ObjectKey()}
	listCh <- minio.ObjectInfo{Key: models.ImageObjectPrefix + "stale.bin"}
	close(listCh)
	client.On("ListObjects", mock.Anything, testBucket, mock.Anything).
		Return((<-chan minio.ObjectInfo)(listCh))

	var removed []string
	client.On("RemoveObjects", mock.Anything, testBucket, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			for obj := range args.Get(2).(<-chan minio.ObjectInfo) {
				removed = append(removed, obj.Key)
			}
		}).
		Return(emptyRemoveErrorChannel())

	require.NoError(t, coord.Commit(context.Background(), cs))
	assert.Equal(t, []string{models.ImageObjectPrefix + "stale.bin"}, removed)
}

func TestCoordinator_Commit_UploadFailureRollsBack(t *testing.T) {
	store := setupStore(t)
	client := new(mocks.Client)
	coord := NewCoordinator(store, client, testBucket, zap.NewNop())

	img := models.ItemImage{ID: testImageID, ItemID: testItemID, Data: []byte("payload")}
	cs := &ChangeSet{
		Strategy:       MergeMerge,
		ListsToCreate:  []models.List{{ID: testListID, Name: "Groceries"}},
		ItemsToCreate:  []models.Item{{ID: testItemID, ListID: testListID, Title: "Milk", Quantity: 1}},
		ImagesToCreate: []models.ItemImage{img},
	}

	client.On("PutObject", mock.Anything, testBucket, img.ObjectKey(), mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, errors.New("storage down"))

	err := coord.Commit(context.Background(), cs)
	assert.Equal(t, KindRepositoryError, KindOf(err))

	// The row writes of the same change-set must have been rolled back.
	all, findErr := store.FindAllLists(context.Background())
	require.NoError(t, findErr)
	assert.Empty(t, all)
}

func TestCoordinator_Commit_MetadataOnlyImageSkipsUpload(t *testing.T) {
	store := setupStore(t)
	client := new(mocks.Client)
	coord := NewCoordinator(store, client, testBucket, zap.NewNop())

	cs := &ChangeSet{
		Strategy:       MergeMerge,
		ListsToCreate:  []models.List{{ID: testListID, Name: "Groceries"}},
		ItemsToCreate:  []models.Item{{ID: testItemID, ListID: testListID, Title: "Milk", Quantity: 1}},
		ImagesToCreate: []models.ItemImage{{ID: testImageID, ItemID: testItemID}},
	}

	require.NoError(t, coord.Commit(context.Background(), cs))
	client.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
