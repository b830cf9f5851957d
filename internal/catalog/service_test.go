package catalog_test

import (
	"context"
	"errors"
	"testing"

	"literalura/internal/catalog"
	"literalura/internal/catalog/mocks"
	"literalura/internal/testutil"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_Authors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := mocks.NewMockRepository(ctrl)
	service := catalog.NewService(mockRepo)
	ctx := context.Background()

	t.Run("distinct by name in first seen order", func(t *testing.T) {
		mockRepo.EXPECT().FindAll(gomock.Any()).Return([]catalog.Book{
			testutil.Frankenstein(),
			testutil.NewBook("Dom Casmurro", "pt", "Machado de Assis", nil, nil),
			testutil.NewBook("The Last Man", "en", "Mary Wollstonecraft Shelley", nil, nil),
		}, nil)

		authors, err := service.Authors(ctx)
		require.NoError(t, err)
		require.Len(t, authors, 2)
		assert.Equal(t, "Mary Wollstonecraft Shelley", authors[0].Name)
		assert.Equal(t, 1797, *authors[0].BirthYear)
		assert.Equal(t, "Machado de Assis", authors[1].Name)
	})

	t.Run("no books", func(t *testing.T) {
		mockRepo.EXPECT().FindAll(gomock.Any()).Return(nil, nil)

		authors, err := service.Authors(ctx)
		require.NoError(t, err)
		assert.Empty(t, authors)
	})

	t.Run("error", func(t *testing.T) {
		mockRepo.EXPECT().FindAll(gomock.Any()).Return(nil, errors.New("db error"))

		_, err := service.Authors(ctx)
		assert.Error(t, err)
	})
}

func TestService_Stats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := mocks.NewMockRepository(ctrl)
	service := catalog.NewService(mockRepo)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mockRepo.EXPECT().CountBooks(gomock.Any()).Return(3, nil)
		mockRepo.EXPECT().CountAuthors(gomock.Any()).Return(2, nil)

		stats, err := service.Stats(ctx)
		require.NoError(t, err)
		assert.Equal(t, catalog.Stats{Books: 3, Authors: 2}, stats)
	})

	t.Run("count error", func(t *testing.T) {
		mockRepo.EXPECT().CountBooks(gomock.Any()).Return(0, errors.New("db error"))

		_, err := service.Stats(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "count books")
	})
}

func TestService_YearQueries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := mocks.NewMockRepository(ctrl)
	service := catalog.NewService(mockRepo)
	ctx := context.Background()
	shelley := testutil.Frankenstein().Author

	mockRepo.EXPECT().FindAuthorsAliveInYear(gomock.Any(), 1800).Return([]catalog.Author{shelley}, nil)
	mockRepo.EXPECT().FindAuthorsBornInYear(gomock.Any(), 1797).Return([]catalog.Author{shelley}, nil)
	mockRepo.EXPECT().FindAuthorsDiedInYear(gomock.Any(), 1851).Return(nil, nil)
	mockRepo.EXPECT().FindByLanguage(gomock.Any(), "en").Return([]catalog.Book{testutil.Frankenstein()}, nil)

	alive, err := service.AuthorsAliveIn(ctx, 1800)
	require.NoError(t, err)
	assert.Len(t, alive, 1)

	born, err := service.AuthorsBornIn(ctx, 1797)
	require.NoError(t, err)
	assert.Len(t, born, 1)

	died, err := service.AuthorsDiedIn(ctx, 1851)
	require.NoError(t, err)
	assert.Empty(t, died)

	books, err := service.BooksInLanguage(ctx, "en")
	require.NoError(t, err)
	assert.Len(t, books, 1)
}
