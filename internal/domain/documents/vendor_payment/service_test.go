package vendor_payment

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
	"procura/internal/domain/documents/purchase_order"
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
	order     *purchase_order.PurchaseOrder
	setStatus []purchase_order.PaymentStatus
}

func (f *fakeOrderStore) GetForUpdate(ctx context.Context, orderID id.ID) (*purchase_order.PurchaseOrder, error) {
	if f.order == nil || f.order.ID != orderID {
		return nil, apperror.NewNotFound("purchase_order", orderID.String())
	}
	return f.order, nil
}

func (f *fakeOrderStore) SetPaymentStatus(ctx context.Context, orderID id.ID, status purchase_order.PaymentStatus) error {
	f.setStatus = append(f.setStatus, status)
	f.order.PaymentStatus = status
	return nil
}

type fakePaymentRepo struct {
	created []*VendorPayment
}

func (f *fakePaymentRepo) Create(ctx context.Context, vp *VendorPayment) error {
	f.created = append(f.created, vp)
	return nil
}

func (f *fakePaymentRepo) GetByID(ctx context.Context, paymentID id.ID) (*VendorPayment, error) {
	for _, vp := range f.created {
		if vp.ID == paymentID {
			return vp, nil
		}
	}
	return nil, apperror.NewNotFound("vendor_payment", paymentID.String())
}

func (f *fakePaymentRepo) List(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*VendorPayment], error) {
	return domain.ListResult[*VendorPayment]{Items: f.created, TotalCount: int64(len(f.created))}, nil
}

func (f *fakePaymentRepo) ListByOrder(ctx context.Context, orderID id.ID) ([]*VendorPayment, error) {
	var out []*VendorPayment
	for _, vp := range f.created {
		if vp.OrderID == orderID {
			out = append(out, vp)
		}
	}
	return out, nil
}

func (f *fakePaymentRepo) TotalPaidForOrder(ctx context.Context, orderID id.ID) (types.Money, error) {
	sum := decimal.Zero
	for _, vp := range f.created {
		if vp.OrderID == orderID {
			sum = sum.Add(vp.Amount)
		}
	}
	return sum, nil
}

// --- fixtures ---

type paymentFixture struct {
	svc    *Service
	orders *fakeOrderStore
	repo   *fakePaymentRepo
	order  *purchase_order.PurchaseOrder
}

// newPaymentFixture builds a sent order with total 1100.00.
func newPaymentFixture(t *testing.T) *paymentFixture {
	t.Helper()

	po := purchase_order.NewPurchaseOrder(id.New())
	require.NoError(t, po.AddLine(id.New(), "Widget", dec("10"), dec("100"), dec("10"), dec("0")))
	po.Number = "PO-20260831-0001"
	po.Status = purchase_order.StatusSent

	f := &paymentFixture{
		orders: &fakeOrderStore{order: po},
		repo:   &fakePaymentRepo{},
		order:  po,
	}

	f.svc = NewService(ServiceConfig{
		Repo:      f.repo,
		Orders:    f.orders,
		TxManager: passthroughTx{},
		Numerator: &numerator.MockGenerator{},
	})

	return f
}

// --- tests ---

func TestRecord_PartialPayment(t *testing.T) {
	f := newPaymentFixture(t)

	vp := NewVendorPayment(f.order.ID, id.Nil(), dec("500"), MethodBankTransfer)
	require.NoError(t, f.svc.Record(context.Background(), vp))

	assert.Equal(t, "VP-20260831-0001", vp.Number)
	assert.Equal(t, f.order.Number, vp.OrderNumber)
	assert.Equal(t, f.order.VendorID, vp.VendorID)

	require.Len(t, f.orders.setStatus, 1)
	assert.Equal(t, purchase_order.PaymentPartiallyPaid, f.orders.setStatus[0])
	require.Len(t, f.repo.created, 1)
}

func TestRecord_ExactBalanceMarksPaid(t *testing.T) {
	f := newPaymentFixture(t)

	vp := NewVendorPayment(f.order.ID, id.Nil(), dec("1100.00"), MethodCash)
	require.NoError(t, f.svc.Record(context.Background(), vp))

	require.Len(t, f.orders.setStatus, 1)
	assert.Equal(t, purchase_order.PaymentPaid, f.orders.setStatus[0])
}

func TestRecord_SecondPaymentCompletesOrder(t *testing.T) {
	f := newPaymentFixture(t)

	first := NewVendorPayment(f.order.ID, id.Nil(), dec("600"), MethodCheck)
	require.NoError(t, f.svc.Record(context.Background(), first))
	assert.Equal(t, purchase_order.PaymentPartiallyPaid, f.order.PaymentStatus)

	second := NewVendorPayment(f.order.ID, id.Nil(), dec("500.00"), MethodCheck)
	require.NoError(t, f.svc.Record(context.Background(), second))
	assert.Equal(t, purchase_order.PaymentPaid, f.order.PaymentStatus)
}

func TestRecord_AmountExceedsBalance(t *testing.T) {
	f := newPaymentFixture(t)

	vp := NewVendorPayment(f.order.ID, id.Nil(), dec("1100.01"), MethodBankTransfer)
	err := f.svc.Record(context.Background(), vp)
	require.Error(t, err)
	assert.True(t, apperror.IsCode(err, apperror.CodeAmountExceedsBalance))
	assert.Empty(t, f.repo.created)
	assert.Empty(t, f.orders.setStatus)
}

func TestRecord_ExceedsRemainingBalance(t *testing.T) {
	f := newPaymentFixture(t)

	first := NewVendorPayment(f.order.ID, id.Nil(), dec("800"), MethodBankTransfer)
	require.NoError(t, f.svc.Record(context.Background(), first))

	second := NewVendorPayment(f.order.ID, id.Nil(), dec("300.01"), MethodBankTransfer)
	err := f.svc.Record(context.Background(), second)
	require.Error(t, err)
	assert.True(t, apperror.IsCode(err, apperror.CodeAmountExceedsBalance))
	require.Len(t, f.repo.created, 1)
}

func TestRecord_AlreadyPaid(t *testing.T) {
	f := newPaymentFixture(t)
	f.order.PaymentStatus = purchase_order.PaymentPaid

	vp := NewVendorPayment(f.order.ID, id.Nil(), dec("1"), MethodCash)
	err := f.svc.Record(context.Background(), vp)
	require.Error(t, err)
	assert.True(t, apperror.IsCode(err, apperror.CodeAlreadyPaid))
	assert.Empty(t, f.repo.created)
}

func TestRecord_UnknownOrder(t *testing.T) {
	f := newPaymentFixture(t)

	vp := NewVendorPayment(id.New(), id.Nil(), dec("10"), MethodCash)
	err := f.svc.Record(context.Background(), vp)
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestRecord_InvalidInputs(t *testing.T) {
	f := newPaymentFixture(t)

	t.Run("non-positive amount", func(t *testing.T) {
		vp := NewVendorPayment(f.order.ID, id.Nil(), dec("0"), MethodCash)
		err := f.svc.Record(context.Background(), vp)
		require.Error(t, err)
		assert.True(t, apperror.IsCode(err, apperror.CodeInvalidInput))
	})

	t.Run("unknown method", func(t *testing.T) {
		vp := NewVendorPayment(f.order.ID, id.Nil(), dec("10"), Method("barter"))
		err := f.svc.Record(context.Background(), vp)
		require.Error(t, err)
		assert.True(t, apperror.IsCode(err, apperror.CodeValidation))
	})
}
