package goods_receipt

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"procura/internal/core/apperror"
	"procura/internal/core/id"
	"procura/internal/core/numerator"
	"procura/internal/core/types"
	"procura/internal/domain"
	"procura/internal/domain/catalogs/warehouse"
	"procura/internal/domain/documents/purchase_order"
	"procura/internal/domain/registers/stock"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// --- fakes ---

type passthroughTx struct{}

func (passthroughTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeOrderStore struct {
	order *purchase_order.PurchaseOrder

	addedQty  map[id.ID]types.Quantity
	setStatus []purchase_order.Status
}

func newFakeOrderStore(po *purchase_order.PurchaseOrder) *fakeOrderStore {
	return &fakeOrderStore{
		order:    po,
		addedQty: make(map[id.ID]types.Quantity),
	}
}

func (f *fakeOrderStore) GetForUpdate(ctx context.Context, orderID id.ID) (*purchase_order.PurchaseOrder, error) {
	if f.order == nil || f.order.ID != orderID {
		return nil, apperror.NewNotFound("purchase_order", orderID.String())
	}
	return f.order, nil
}

func (f *fakeOrderStore) AddReceivedQuantity(ctx context.Context, lineID id.ID, quantity types.Quantity) error {
	prev, ok := f.addedQty[lineID]
	if !ok {
		prev = decimal.Zero
	}
	f.addedQty[lineID] = prev.Add(quantity)
	return nil
}

func (f *fakeOrderStore) SetStatus(ctx context.Context, orderID id.ID, status purchase_order.Status) error {
	f.setStatus = append(f.setStatus, status)
	return nil
}

type fakeReceiptRepo struct {
	created []*GoodsReceipt
}

func (f *fakeReceiptRepo) Create(ctx context.Context, gr *GoodsReceipt) error {
	f.created = append(f.created, gr)
	return nil
}

func (f *fakeReceiptRepo) GetByID(ctx context.Context, receiptID id.ID) (*GoodsReceipt, error) {
	for _, gr := range f.created {
		if gr.ID == receiptID {
			return gr, nil
		}
	}
	return nil, apperror.NewNotFound("goods_receipt", receiptID.String())
}

func (f *fakeReceiptRepo) List(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*GoodsReceipt], error) {
	return domain.ListResult[*GoodsReceipt]{Items: f.created, TotalCount: int64(len(f.created))}, nil
}

func (f *fakeReceiptRepo) ListByOrder(ctx context.Context, orderID id.ID) ([]*GoodsReceipt, error) {
	var out []*GoodsReceipt
	for _, gr := range f.created {
		if gr.OrderID == orderID {
			out = append(out, gr)
		}
	}
	return out, nil
}

type fakeWarehouseStore struct {
	wh *warehouse.Warehouse
}

func (f *fakeWarehouseStore) GetByID(ctx context.Context, whID id.ID) (*warehouse.Warehouse, error) {
	if f.wh == nil || f.wh.ID != whID {
		return nil, apperror.NewNotFound("warehouse", whID.String())
	}
	return f.wh, nil
}

type fakeStockStore struct {
	movements []stock.Movement
}

func (f *fakeStockStore) Apply(ctx context.Context, movements []stock.Movement) error {
	f.movements = append(f.movements, movements...)
	return nil
}

// --- fixtures ---

type receiveFixture struct {
	svc     *Service
	orders  *fakeOrderStore
	repo    *fakeReceiptRepo
	stock   *fakeStockStore
	order   *purchase_order.PurchaseOrder
	wh      *warehouse.Warehouse
	itemOne id.ID
	itemTwo id.ID
}

func newReceiveFixture(t *testing.T) *receiveFixture {
	t.Helper()

	f := &receiveFixture{
		itemOne: id.New(),
		itemTwo: id.New(),
	}

	f.order = purchase_order.NewPurchaseOrder(id.New())
	require.NoError(t, f.order.AddLine(f.itemOne, "Widget", dec("10"), dec("100"), dec("10"), dec("0")))
	require.NoError(t, f.order.AddLine(f.itemTwo, "Gadget", dec("5"), dec("20"), dec("0"), dec("0")))
	f.order.Number = "PO-20260831-0001"
	f.order.Status = purchase_order.StatusSent

	f.wh = warehouse.NewWarehouse("WH-00001", "Main", warehouse.TypeMain)

	f.orders = newFakeOrderStore(f.order)
	f.repo = &fakeReceiptRepo{}
	f.stock = &fakeStockStore{}

	f.svc = NewService(ServiceConfig{
		Repo:       f.repo,
		Orders:     f.orders,
		Warehouses: &fakeWarehouseStore{wh: f.wh},
		Stock:      f.stock,
		TxManager:  passthroughTx{},
		Numerator:  &numerator.MockGenerator{},
	})

	return f
}

// --- tests ---

func TestReceive_PartialDelivery(t *testing.T) {
	f := newReceiveFixture(t)

	gr := NewGoodsReceipt(f.order.ID, f.wh.ID)
	gr.AddLine(f.order.Lines[0].ID, dec("4"))

	require.NoError(t, f.svc.Receive(context.Background(), gr))

	assert.Equal(t, "GR-20260831-0001", gr.Number)
	assert.Equal(t, f.order.Number, gr.OrderNumber)

	// Unit cost comes from the order line, not from the caller.
	require.Len(t, gr.Lines, 1)
	assert.True(t, gr.Lines[0].UnitCost.Equal(dec("100")))
	assert.Equal(t, f.itemOne, gr.Lines[0].ItemID)
	assert.Equal(t, "Widget", gr.Lines[0].ItemName)

	// Stock gets quantity and value.
	require.Len(t, f.stock.movements, 1)
	assert.True(t, f.stock.movements[0].Quantity.Equal(dec("4")))
	assert.True(t, f.stock.movements[0].Value.Equal(dec("400.00")))
	assert.Equal(t, f.wh.ID, f.stock.movements[0].WarehouseID)

	// Order line accumulates and the order moves to partially received.
	assert.True(t, f.orders.addedQty[f.order.Lines[0].ID].Equal(dec("4")))
	require.Len(t, f.orders.setStatus, 1)
	assert.Equal(t, purchase_order.StatusPartiallyReceived, f.orders.setStatus[0])

	require.Len(t, f.repo.created, 1)
}

func TestReceive_CompletesOrder(t *testing.T) {
	f := newReceiveFixture(t)

	gr := NewGoodsReceipt(f.order.ID, f.wh.ID)
	gr.AddLine(f.order.Lines[0].ID, dec("10"))
	gr.AddLine(f.order.Lines[1].ID, dec("5"))

	require.NoError(t, f.svc.Receive(context.Background(), gr))

	require.Len(t, f.orders.setStatus, 1)
	assert.Equal(t, purchase_order.StatusFullyReceived, f.orders.setStatus[0])
}

func TestReceive_SecondDeliveryCompletes(t *testing.T) {
	f := newReceiveFixture(t)
	f.order.Status = purchase_order.StatusPartiallyReceived
	f.order.Lines[0].ReceivedQuantity = dec("6")
	f.order.Lines[1].ReceivedQuantity = dec("5")

	gr := NewGoodsReceipt(f.order.ID, f.wh.ID)
	gr.AddLine(f.order.Lines[0].ID, dec("4"))

	require.NoError(t, f.svc.Receive(context.Background(), gr))

	require.Len(t, f.orders.setStatus, 1)
	assert.Equal(t, purchase_order.StatusFullyReceived, f.orders.setStatus[0])
}

func TestReceive_QuantityExceedsRemaining(t *testing.T) {
	f := newReceiveFixture(t)
	f.order.Lines[0].ReceivedQuantity = dec("8")

	gr := NewGoodsReceipt(f.order.ID, f.wh.ID)
	gr.AddLine(f.order.Lines[0].ID, dec("3"))

	err := f.svc.Receive(context.Background(), gr)
	require.Error(t, err)
	assert.True(t, apperror.IsCode(err, apperror.CodeQuantityExceedsRemaining))

	assert.Empty(t, f.repo.created)
	assert.Empty(t, f.stock.movements)
	assert.Empty(t, f.orders.setStatus)
}

func TestReceive_OrderNotReceivable(t *testing.T) {
	tests := []struct {
		name   string
		status purchase_order.Status
	}{
		{"draft", purchase_order.StatusDraft},
		{"fully received", purchase_order.StatusFullyReceived},
		{"cancelled", purchase_order.StatusCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newReceiveFixture(t)
			f.order.Status = tt.status

			gr := NewGoodsReceipt(f.order.ID, f.wh.ID)
			gr.AddLine(f.order.Lines[0].ID, dec("1"))

			err := f.svc.Receive(context.Background(), gr)
			require.Error(t, err)
			assert.True(t, apperror.IsCode(err, apperror.CodeOrderNotReceivable))
			assert.Empty(t, f.repo.created)
		})
	}
}

func TestReceive_UnknownOrderLine(t *testing.T) {
	f := newReceiveFixture(t)

	gr := NewGoodsReceipt(f.order.ID, f.wh.ID)
	gr.AddLine(id.New(), dec("1"))

	err := f.svc.Receive(context.Background(), gr)
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestReceive_InactiveWarehouse(t *testing.T) {
	f := newReceiveFixture(t)
	f.wh.IsActive = false

	gr := NewGoodsReceipt(f.order.ID, f.wh.ID)
	gr.AddLine(f.order.Lines[0].ID, dec("1"))

	err := f.svc.Receive(context.Background(), gr)
	require.Error(t, err)
	assert.True(t, apperror.IsCode(err, apperror.CodeValidation))
}

func TestReceive_RejectsNonPositiveQuantity(t *testing.T) {
	f := newReceiveFixture(t)

	gr := NewGoodsReceipt(f.order.ID, f.wh.ID)
	gr.AddLine(f.order.Lines[0].ID, dec("0"))

	err := f.svc.Receive(context.Background(), gr)
	require.Error(t, err)
	assert.True(t, apperror.IsCode(err, apperror.CodeInvalidInput))
}

func TestReceive_UnknownOrder(t *testing.T) {
	f := newReceiveFixture(t)

	gr := NewGoodsReceipt(id.New(), f.wh.ID)
	gr.AddLine(f.order.Lines[0].ID, dec("1"))

	err := f.svc.Receive(context.Background(), gr)
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}
