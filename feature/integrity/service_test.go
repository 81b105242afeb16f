package integrity

import (
	"context"
	"testing"

	"catalog-impex/core/database"
	"catalog-impex/core/impex"
	"catalog-impex/core/storage/mocks"
	"catalog-impex/feature/catalog"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var testConfig = impex.Config{
	InboxPrefix:     "import/inbox",
	ProcessedPrefix: "import/processed",
	FailedPrefix:    "import/failed",
}

func setupDB(t *testing.T) *gorm.DB {
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, catalog.Migrate(db))
	return db
}

func TestService_Structure(t *testing.T) {
	mockClient := new(mocks.Client)
	svc := NewService(mockClient, "test-bucket", testConfig, nil, zap.NewNop())

	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)
	mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).Return(mocks.Objects())
	mockClient.On("PutObject", mock.Anything, "test-bucket", mock.Anything, mock.Anything, int64(0), mock.Anything).
		Return(minio.UploadInfo{}, nil)

	missing, err := svc.CheckStructure(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"import/inbox", "import/processed", "import/failed"}, missing)

	require.NoError(t, svc.FixStructure(context.Background(), missing))
	mockClient.AssertNumberOfCalls(t, "PutObject", 3)
}

func TestService_Schema(t *testing.T) {
	t.Run("Connected", func(t *testing.T) {
		svc := NewService(new(mocks.Client), "test-bucket", testConfig, setupDB(t), zap.NewNop())

		report, err := svc.CheckSchema()
		require.NoError(t, err)
		assert.True(t, report.Matched)
	})

	t.Run("No Database", func(t *testing.T) {
		svc := NewService(new(mocks.Client), "test-bucket", testConfig, nil, zap.NewNop())

		_, err := svc.CheckSchema()
		assert.Error(t, err)
	})
}

func TestService_StructureReport(t *testing.T) {
	t.Run("Intact", func(t *testing.T) {
		mockClient := new(mocks.Client)
		svc := NewService(mockClient, "test-bucket", testConfig, nil, zap.NewNop())
		mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)
		for i := 0; i < 3; i++ {
			mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).
				Return(mocks.Objects(minio.ObjectInfo{Key: "marker/"})).Once()
		}

		report, err := svc.Structure(context.Background(), true)
		require.NoError(t, err)
		assert.Equal(t, "ok", report.Status)
		assert.Empty(t, report.Missing)
		mockClient.AssertNotCalled(t, "PutObject")
	})

	t.Run("Missing Without Fix", func(t *testing.T) {
		mockClient := new(mocks.Client)
		svc := NewService(mockClient, "test-bucket", testConfig, nil, zap.NewNop())
		mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)
		mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).Return(mocks.Objects())

		report, err := svc.Structure(context.Background(), false)
		require.NoError(t, err)
		assert.Equal(t, "missing", report.Status)
		assert.Len(t, report.Missing, 3)
		mockClient.AssertNotCalled(t, "PutObject")
	})
}

func TestService_CheckAll(t *testing.T) {
	mockClient := new(mocks.Client)
	svc := NewService(mockClient, "test-bucket", testConfig, nil, zap.NewNop())
	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(false, nil)

	report := svc.CheckAll(context.Background())

	assert.Nil(t, report.Structure)
	assert.Contains(t, report.StructureError, "does not exist")
	assert.Nil(t, report.Schema)
	assert.NotEmpty(t, report.SchemaError)
}
