package repo

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProductMock(t *testing.T) (*MySQLProductRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewMySQLProductRepo(db), mock
}

func TestListActive(t *testing.T) {
	r, mock := newProductMock(t)

	mock.ExpectQuery("FROM productos WHERE activo = TRUE ORDER BY categoria, nombre").
		WillReturnRows(sqlmock.NewRows([]string{"id_producto", "nombre", "categoria", "precio", "activo"}).
			AddRow(7, "Gaseosa 400ml", "Bebidas", 5.0, true).
			AddRow(1, "Papas Locas Clásicas", "Papas", 20.0, true))

	out, err := r.ListActive(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "Gaseosa 400ml", out[0].Name)
	assert.Equal(t, 20.0, out[1].Price)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListActiveEmptyCatalog(t *testing.T) {
	r, mock := newProductMock(t)

	mock.ExpectQuery("FROM productos").
		WillReturnRows(sqlmock.NewRows([]string{"id_producto", "nombre", "categoria", "precio", "activo"}))

	out, err := r.ListActive(context.Background())
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestGetActiveByName(t *testing.T) {
	r, mock := newProductMock(t)

	mock.ExpectQuery("FROM productos WHERE nombre = \\? AND activo = TRUE").
		WithArgs("Papas Locas Clásicas").
		WillReturnRows(sqlmock.NewRows([]string{"id_producto", "nombre", "categoria", "precio", "activo"}).
			AddRow(1, "Papas Locas Clásicas", "Papas", 20.0, true))

	p, err := r.GetActiveByName(context.Background(), "Papas Locas Clásicas")
	require.NoError(t, err)
	assert.Equal(t, int64(1), p.ID)
	assert.Equal(t, 20.0, p.Price)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetActiveByNameNotFound(t *testing.T) {
	r, mock := newProductMock(t)

	mock.ExpectQuery("FROM productos").
		WithArgs("Producto Inexistente").
		WillReturnError(sql.ErrNoRows)

	_, err := r.GetActiveByName(context.Background(), "Producto Inexistente")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestGetActiveByNameStoreFailure(t *testing.T) {
	r, mock := newProductMock(t)

	boom := errors.New("connection reset")
	mock.ExpectQuery("FROM productos").WillReturnError(boom)

	_, err := r.GetActiveByName(context.Background(), "Papas Locas Clásicas")
	require.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrNotFound)
}
