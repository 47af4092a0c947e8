package repository

import (
	"testing"

	"github.com/orghandbook/orghandbook-api/internal/models"
	"github.com/stretchr/testify/require"
)

func TestActivityRepository_GetTreeRoots(t *testing.T) {
	db := setupTestDB(t)
	repo := NewActivityRepository(db)

	food := createTestActivity(t, db, "Food", nil, 0)
	cars := createTestActivity(t, db, "Cars", nil, 0)
	createTestActivity(t, db, "Meat", uint64Ptr(food.ID), 1)

	roots, err := repo.GetTree(nil)
	require.NoError(t, err)
	require.Len(t, roots, 2)
	require.Equal(t, food.ID, roots[0].ID)
	require.Equal(t, cars.ID, roots[1].ID)
}

func TestActivityRepository_GetTreeOneLevelOnly(t *testing.T) {
	db := setupTestDB(t)
	repo := NewActivityRepository(db)

	food := createTestActivity(t, db, "Food", nil, 0)
	meat := createTestActivity(t, db, "Meat", uint64Ptr(food.ID), 1)
	dairy := createTestActivity(t, db, "Dairy", uint64Ptr(food.ID), 1)
	createTestActivity(t, db, "Sausages", uint64Ptr(meat.ID), 2)

	children, err := repo.GetTree(uint64Ptr(food.ID))
	require.NoError(t, err)
	require.Len(t, children, 2)
	require.Equal(t, meat.ID, children[0].ID)
	require.Equal(t, dairy.ID, children[1].ID)
}

func TestActivityRepository_GetWithRelations(t *testing.T) {
	db := setupTestDB(t)
	repo := NewActivityRepository(db)

	food := createTestActivity(t, db, "Food", nil, 0)
	meat := createTestActivity(t, db, "Meat", uint64Ptr(food.ID), 1)
	createTestActivity(t, db, "Sausages", uint64Ptr(meat.ID), 2)

	loaded, err := repo.GetWithRelations(meat.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded.Parent)
	require.Equal(t, food.ID, loaded.Parent.ID)
	require.Len(t, loaded.Children, 1)
	require.Equal(t, "Sausages", loaded.Children[0].Name)
}

func TestActivityRepository_UpdateSparse(t *testing.T) {
	db := setupTestDB(t)
	repo := NewActivityRepository(db)

	food := createTestActivity(t, db, "Food", nil, 0)

	err := repo.Update(food.ID, map[string]interface{}{"name": "Groceries"})
	require.NoError(t, err)

	loaded, err := repo.Get(food.ID)
	require.NoError(t, err)
	require.Equal(t, "Groceries", loaded.Name)
	require.Equal(t, 0, loaded.Level)
	require.Nil(t, loaded.ParentID)
}

func TestActivityRepository_DeleteLeavesChildrenInPlace(t *testing.T) {
	db := setupTestDB(t)
	repo := NewActivityRepository(db)

	food := createTestActivity(t, db, "Food", nil, 0)
	meat := createTestActivity(t, db, "Meat", uint64Ptr(food.ID), 1)

	require.NoError(t, repo.Delete(food.ID))

	_, err := repo.Get(food.ID)
	require.Error(t, err)

	child, err := repo.Get(meat.ID)
	require.NoError(t, err)
	require.NotNil(t, child.ParentID)
	require.Equal(t, food.ID, *child.ParentID)
}

func TestActivityRepository_DeleteIdempotent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewActivityRepository(db)

	require.NoError(t, repo.Delete(424242))
}

func TestActivityRepository_CreateStoresSuppliedLevel(t *testing.T) {
	db := setupTestDB(t)
	repo := NewActivityRepository(db)

	activity := &models.Activity{Name: "Accessories", Level: 2}
	require.NoError(t, repo.Create(activity))
	require.NotZero(t, activity.ID)
	require.Equal(t, 2, activity.Level)
}
