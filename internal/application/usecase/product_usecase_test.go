package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ordico-pos/internal/application/dto"
	"github.com/jhoicas/ordico-pos/internal/application/usecase"
	"github.com/jhoicas/ordico-pos/internal/domain"
	"github.com/jhoicas/ordico-pos/internal/domain/entity"
	"github.com/jhoicas/ordico-pos/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake de repositorio con unicidad por nombre
// ──────────────────────────────────────────────────────────────────────────────

type memProductRepo struct {
	byID map[string]*entity.Product
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{byID: make(map[string]*entity.Product)}
}

func (r *memProductRepo) Create(p *entity.Product) error {
	for _, existing := range r.byID {
		if existing.Name == p.Name {
			return &domain.DuplicateKeyError{Field: "nombre"}
		}
	}
	clone := *p
	r.byID[p.ID] = &clone
	return nil
}

func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	clone := *p
	return &clone, nil
}

func (r *memProductRepo) GetByName(name string) (*entity.Product, error) {
	for _, p := range r.byID {
		if p.Name == name {
			clone := *p
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) Update(p *entity.Product) error {
	if _, ok := r.byID[p.ID]; !ok {
		return domain.ErrNotFound
	}
	clone := *p
	r.byID[p.ID] = &clone
	return nil
}

func (r *memProductRepo) Delete(id string) (bool, error) {
	_, ok := r.byID[id]
	delete(r.byID, id)
	return ok, nil
}

func (r *memProductRepo) List() ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.byID))
	for _, p := range r.byID {
		clone := *p
		out = append(out, &clone)
	}
	return out, nil
}

func (r *memProductRepo) Count() (int, error) { return len(r.byID), nil }

func (r *memProductRepo) GetByIDForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *memProductRepo) DecrementStock(id string, qty int) error {
	p, ok := r.byID[id]
	if !ok || p.Quantity < qty {
		return domain.ErrInsufficientStock
	}
	p.Quantity -= qty
	return nil
}

// memTxRunner todo-o-nada sobre el repo en memoria: si fn falla, restaura el
// estado previo completo.
type memTxRunner struct {
	repo *memProductRepo
}

func (t *memTxRunner) Run(_ context.Context, fn func(products repository.ProductRepository) error) error {
	snapshot := make(map[string]*entity.Product, len(t.repo.byID))
	for id, p := range t.repo.byID {
		clone := *p
		snapshot[id] = &clone
	}
	if err := fn(t.repo); err != nil {
		t.repo.byID = snapshot
		return err
	}
	return nil
}

func newProductUC() (*usecase.ProductUseCase, *memProductRepo) {
	repo := newMemProductRepo()
	return usecase.NewProductUseCase(repo, &memTxRunner{repo: repo}), repo
}

func createReq(nombre string, cantidad int, precio string) dto.CreateProductRequest {
	return dto.CreateProductRequest{
		Name:     nombre,
		Quantity: cantidad,
		Price:    decimal.RequireFromString(precio),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// CRUD
// ──────────────────────────────────────────────────────────────────────────────

func TestProductCreate_AsignaCategoriaPorDefecto(t *testing.T) {
	uc, _ := newProductUC()

	out, err := uc.Create(createReq("Arroz", 50, "150.00"))
	require.NoError(t, err)

	assert.NotEmpty(t, out.ID)
	assert.Equal(t, entity.DefaultCategory, out.Category,
		"sin categoría explícita se asigna la por defecto")
}

func TestProductCreate_NombreDuplicado(t *testing.T) {
	uc, _ := newProductUC()
	_, err := uc.Create(createReq("Arroz", 50, "150.00"))
	require.NoError(t, err)

	_, err = uc.Create(createReq("Arroz", 10, "99.00"))
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	var dup *domain.DuplicateKeyError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "nombre", dup.Field, "el error identifica la columna en conflicto")
}

func TestProductCreate_DatosInvalidos(t *testing.T) {
	uc, _ := newProductUC()

	_, err := uc.Create(createReq("", 1, "10.00"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "nombre vacío")

	_, err = uc.Create(createReq("Arroz", -1, "10.00"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad negativa")

	_, err = uc.Create(createReq("Arroz", 1, "-10.00"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "precio negativo")
}

func TestProductUpdate_ParcheaSoloLosCamposEnviados(t *testing.T) {
	uc, _ := newProductUC()
	created, err := uc.Create(createReq("Arroz", 50, "150.00"))
	require.NoError(t, err)

	nuevoPrecio := decimal.RequireFromString("175.50")
	out, err := uc.Update(created.ID, dto.UpdateProductRequest{Price: &nuevoPrecio})
	require.NoError(t, err)

	assert.Equal(t, "175.5", out.Price.String())
	assert.Equal(t, "Arroz", out.Name, "los campos no enviados se conservan")
	assert.Equal(t, 50, out.Quantity)
}

func TestProductUpdate_IDInexistente(t *testing.T) {
	uc, _ := newProductUC()
	_, err := uc.Update("no-existe", dto.UpdateProductRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductDelete_Idempotente(t *testing.T) {
	uc, _ := newProductUC()
	created, err := uc.Create(createReq("Arroz", 50, "150.00"))
	require.NoError(t, err)

	found, err := uc.Delete(created.ID)
	require.NoError(t, err)
	assert.True(t, found)

	found, err = uc.Delete(created.ID)
	require.NoError(t, err)
	assert.False(t, found, "borrar dos veces no es error, solo informa que no había fila")
}

// ──────────────────────────────────────────────────────────────────────────────
// Búsqueda sin acentos
// ──────────────────────────────────────────────────────────────────────────────

func TestProductSearch_IgnoraAcentosYMayusculas(t *testing.T) {
	uc, _ := newProductUC()
	_, err := uc.Create(dto.CreateProductRequest{
		Name: "Leche Entera", Quantity: 10,
		Price: decimal.RequireFromString("95.50"), Category: "Lácteos",
	})
	require.NoError(t, err)
	_, err = uc.Create(createReq("Arroz", 50, "150.00"))
	require.NoError(t, err)

	out, err := uc.Search("lacteos")
	require.NoError(t, err)
	require.Equal(t, 1, out.Total, `"lacteos" debe encontrar la categoría "Lácteos"`)
	assert.Equal(t, "Leche Entera", out.Items[0].Name)

	out, err = uc.Search("LECHE")
	require.NoError(t, err)
	assert.Equal(t, 1, out.Total)

	out, err = uc.Search("inexistente")
	require.NoError(t, err)
	assert.Equal(t, 0, out.Total)
}

// ──────────────────────────────────────────────────────────────────────────────
// Importación masiva todo-o-nada
// ──────────────────────────────────────────────────────────────────────────────

func TestBulkImport_InsertaTodasLasFilas(t *testing.T) {
	uc, repo := newProductUC()

	rows := []dto.ProductImportRow{
		{Name: "Arroz", Brand: "Gallo", Quantity: 50, Price: decimal.RequireFromString("150.00"), Category: "Almacén"},
		{Name: "Fideos", Brand: "Matarazzo", Quantity: 40, Price: decimal.RequireFromString("120.00")},
	}
	count, err := uc.BulkImport(context.Background(), rows)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	fideos, err := repo.GetByName("Fideos")
	require.NoError(t, err)
	require.NotNil(t, fideos)
	assert.Equal(t, entity.DefaultCategory, fideos.Category,
		"las filas sin categoría reciben la por defecto")
}

func TestBulkImport_FilaDuplicadaAbortaTodo(t *testing.T) {
	uc, repo := newProductUC()
	_, err := uc.Create(createReq("Arroz", 50, "150.00"))
	require.NoError(t, err)

	rows := []dto.ProductImportRow{
		{Name: "Fideos", Quantity: 40, Price: decimal.RequireFromString("120.00")},
		{Name: "Arroz", Quantity: 10, Price: decimal.RequireFromString("99.00")}, // duplicado
	}
	_, err = uc.BulkImport(context.Background(), rows)
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	fideos, err := repo.GetByName("Fideos")
	require.NoError(t, err)
	assert.Nil(t, fideos, "la fila válida tampoco debe quedar insertada (todo-o-nada)")
}

func TestBulkImport_FilaInvalidaNoAbreTransaccion(t *testing.T) {
	uc, repo := newProductUC()

	rows := []dto.ProductImportRow{
		{Name: "Fideos", Quantity: 40, Price: decimal.RequireFromString("120.00")},
		{Name: "", Quantity: 1, Price: decimal.RequireFromString("1.00")},
	}
	_, err := uc.BulkImport(context.Background(), rows)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
