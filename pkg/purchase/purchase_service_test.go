package purchase

import (
	"UnityGrow-Backend/domain"
	"UnityGrow-Backend/entities"
	"UnityGrow-Backend/pkg/referral"
	"context"
	"errors"
	"mime/multipart"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakePurchaseRepository mirrors the real repository's transaction semantics:
// the pending-only status flip is the linearization point, the unique
// (userId, packageId) index rejects any second row for the pair, and a missing
// buyer leaves the purchase paid with no credits.
type fakePurchaseRepository struct {
	purchases map[string]*entities.Purchase
	users     map[string]*entities.User
}

var errDuplicateKey = errors.New("duplicate key value violates unique constraint")

func newFakePurchaseRepository(users ...*entities.User) *fakePurchaseRepository {
	r := &fakePurchaseRepository{
		purchases: make(map[string]*entities.Purchase),
		users:     make(map[string]*entities.User),
	}
	for _, u := range users {
		r.users[u.UserID] = u
	}
	return r
}

func (r *fakePurchaseRepository) CreatePurchase(ctx context.Context, purchase *entities.Purchase) error {
	for _, p := range r.purchases {
		if p.UserID == purchase.UserID && p.PackageID == purchase.PackageID {
			return errDuplicateKey
		}
	}
	r.purchases[purchase.ID.String()] = purchase
	return nil
}

func (r *fakePurchaseRepository) GetPurchaseByID(ctx context.Context, id string) (*entities.Purchase, error) {
	p, ok := r.purchases[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *fakePurchaseRepository) GetUserPurchases(ctx context.Context, userID string) ([]*entities.Purchase, error) {
	var result []*entities.Purchase
	for _, p := range r.purchases {
		if p.UserID == userID {
			result = append(result, p)
		}
	}
	return result, nil
}

func (r *fakePurchaseRepository) GetPendingPurchases(ctx context.Context) ([]*entities.Purchase, error) {
	var result []*entities.Purchase
	for _, p := range r.purchases {
		if p.Status == domain.PurchaseStatusPending {
			result = append(result, p)
		}
	}
	return result, nil
}

func (r *fakePurchaseRepository) FindActivePurchase(ctx context.Context, userID, packageID string) (*entities.Purchase, error) {
	for _, p := range r.purchases {
		if p.UserID == userID && p.PackageID == packageID &&
			(p.Status == domain.PurchaseStatusPending || p.Status == domain.PurchaseStatusPaid) {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakePurchaseRepository) ApprovePurchase(ctx context.Context, id string, engine referral.PayoutEngine) ([]domain.PayoutCredit, error) {
	p, ok := r.purchases[id]
	if !ok {
		return nil, domain.ErrPurchaseNotFound
	}
	if p.Status != domain.PurchaseStatusPending {
		return nil, domain.ErrPurchaseNotPending
	}
	p.Status = domain.PurchaseStatusPaid

	credits, err := engine.Distribute(ctx, &fakeUserLedger{users: r.users}, p.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []domain.PayoutCredit{}, nil
		}
		return nil, err
	}
	return credits, nil
}

func (r *fakePurchaseRepository) RejectPurchase(ctx context.Context, id string) error {
	p, ok := r.purchases[id]
	if !ok {
		return domain.ErrPurchaseNotFound
	}
	if p.Status != domain.PurchaseStatusPending {
		return domain.ErrPurchaseNotPending
	}
	p.Status = domain.PurchaseStatusRejected
	return nil
}

type fakeUserLedger struct {
	users map[string]*entities.User
}

func (l *fakeUserLedger) GetByUserID(ctx context.Context, userID string) (*entities.User, error) {
	u, ok := l.users[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (l *fakeUserLedger) AddCoins(ctx context.Context, userID string, amount int64) error {
	u, ok := l.users[userID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.Coins += amount
	return nil
}

type fakePackageRepository struct {
	packages map[string]*entities.Package
}

func (r *fakePackageRepository) GetPackages(ctx context.Context) ([]*entities.Package, error) {
	var result []*entities.Package
	for _, pkg := range r.packages {
		result = append(result, pkg)
	}
	return result, nil
}

func (r *fakePackageRepository) GetPackageByID(ctx context.Context, packageID string) (*entities.Package, error) {
	pkg, ok := r.packages[packageID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return pkg, nil
}

func (r *fakePackageRepository) ReplacePackages(ctx context.Context, packages []*entities.Package) error {
	r.packages = make(map[string]*entities.Package)
	for _, pkg := range packages {
		r.packages[pkg.PackageID] = pkg
	}
	return nil
}

// fakeAwsS3 records deleted object keys; uploads are not exercised here.
type fakeAwsS3 struct {
	deleted []string
}

func (s *fakeAwsS3) UploadFile(fileName string, file *multipart.FileHeader, folder string, allowedTypes ...string) (string, error) {
	return folder + "/" + fileName, nil
}

func (s *fakeAwsS3) DeleteFile(objectKey string) error {
	s.deleted = append(s.deleted, objectKey)
	return nil
}

func (s *fakeAwsS3) GetPublicLinkKey(objectKey string) string {
	return "https://bucket.s3.region.amazonaws.com/" + objectKey
}

func (s *fakeAwsS3) GetObjectKeyFromLink(link string) string {
	return strings.TrimPrefix(link, "https://bucket.s3.region.amazonaws.com/")
}

func refBy(userID string) *string { return &userID }

func newTestService(repo *fakePurchaseRepository) (PurchaseService, *fakeAwsS3) {
	packages := &fakePackageRepository{packages: map[string]*entities.Package{
		"basic-001": {ID: uuid.New(), PackageID: "basic-001", Title: "Basic Growth Package", Price: 1000},
	}}
	s3 := &fakeAwsS3{}
	return NewPurchaseService(repo, packages, referral.NewPayoutEngine(), s3), s3
}

func TestApprovePurchaseDistributesAndGuards(t *testing.T) {
	// A refers B refers C; C purchases and the admin approves.
	userA := &entities.User{UserID: "AAAAAA"}
	userB := &entities.User{UserID: "BBBBBB", ReferredBy: refBy("AAAAAA")}
	userC := &entities.User{UserID: "CCCCCC", ReferredBy: refBy("BBBBBB")}
	repo := newFakePurchaseRepository(userA, userB, userC)
	svc, _ := newTestService(repo)

	created, err := svc.CreatePurchase(context.Background(), domain.CreatePurchaseRequest{PackageID: "basic-001"}, "CCCCCC")
	require.NoError(t, err)
	require.Equal(t, domain.PurchaseStatusPending, created.Status)

	var purchaseID string
	for id := range repo.purchases {
		purchaseID = id
	}

	resp, err := svc.ApprovePurchase(context.Background(), purchaseID)
	require.NoError(t, err)
	require.Equal(t, domain.PurchaseStatusPaid, resp.Status)
	require.Equal(t, []domain.PayoutCredit{
		{UserID: "CCCCCC", Amount: 150},
		{UserID: "BBBBBB", Amount: 450},
		{UserID: "AAAAAA", Amount: 45},
	}, resp.Distributed)

	require.Equal(t, int64(150), userC.Coins)
	require.Equal(t, int64(450), userB.Coins)
	require.Equal(t, int64(45), userA.Coins)

	// Re-approving must conflict and leave every balance unchanged.
	_, err = svc.ApprovePurchase(context.Background(), purchaseID)
	require.ErrorIs(t, err, domain.ErrPurchaseNotPending)
	require.Equal(t, int64(150), userC.Coins)
	require.Equal(t, int64(450), userB.Coins)
	require.Equal(t, int64(45), userA.Coins)
}

func TestApprovePurchaseNotFound(t *testing.T) {
	svc, _ := newTestService(newFakePurchaseRepository())

	_, err := svc.ApprovePurchase(context.Background(), uuid.NewString())
	require.ErrorIs(t, err, domain.ErrPurchaseNotFound)
}

func TestApprovePurchaseMissingBuyer(t *testing.T) {
	// The buyer row is gone: the purchase stays paid with zero credits, a
	// detectable inconsistency rather than an error.
	repo := newFakePurchaseRepository()
	svc, _ := newTestService(repo)

	purchase := &entities.Purchase{
		ID:        uuid.New(),
		UserID:    "GHOST0",
		PackageID: "basic-001",
		Price:     1000,
		Status:    domain.PurchaseStatusPending,
	}
	require.NoError(t, repo.CreatePurchase(context.Background(), purchase))

	resp, err := svc.ApprovePurchase(context.Background(), purchase.ID.String())
	require.NoError(t, err)
	require.Equal(t, domain.PurchaseStatusPaid, resp.Status)
	require.Empty(t, resp.Distributed)
	require.Equal(t, domain.PurchaseStatusPaid, purchase.Status)
}

func TestCreatePurchaseDuplicateGuard(t *testing.T) {
	userC := &entities.User{UserID: "CCCCCC"}
	repo := newFakePurchaseRepository(userC)
	svc, _ := newTestService(repo)

	_, err := svc.CreatePurchase(context.Background(), domain.CreatePurchaseRequest{PackageID: "basic-001"}, "CCCCCC")
	require.NoError(t, err)

	// Pending blocks a second request.
	_, err = svc.CreatePurchase(context.Background(), domain.CreatePurchaseRequest{PackageID: "basic-001"}, "CCCCCC")
	require.ErrorIs(t, err, domain.ErrDuplicatePurchase)

	var purchaseID string
	for id := range repo.purchases {
		purchaseID = id
	}
	_, err = svc.ApprovePurchase(context.Background(), purchaseID)
	require.NoError(t, err)

	// Paid blocks it too.
	_, err = svc.CreatePurchase(context.Background(), domain.CreatePurchaseRequest{PackageID: "basic-001"}, "CCCCCC")
	require.ErrorIs(t, err, domain.ErrDuplicatePurchase)
}

func TestCreatePurchaseAfterRejectionStillBlocked(t *testing.T) {
	// The unique (userId, packageId) index keeps the slot occupied after a
	// rejection, so a retry fails at the index even though the duplicate
	// pre-check passes. Known limitation, asserted as enforced.
	userC := &entities.User{UserID: "CCCCCC"}
	repo := newFakePurchaseRepository(userC)
	svc, _ := newTestService(repo)

	_, err := svc.CreatePurchase(context.Background(), domain.CreatePurchaseRequest{PackageID: "basic-001"}, "CCCCCC")
	require.NoError(t, err)

	var purchaseID string
	for id := range repo.purchases {
		purchaseID = id
	}
	rejected, err := svc.RejectPurchase(context.Background(), purchaseID)
	require.NoError(t, err)
	require.Equal(t, domain.PurchaseStatusRejected, rejected.Status)

	_, err = svc.CreatePurchase(context.Background(), domain.CreatePurchaseRequest{PackageID: "basic-001"}, "CCCCCC")
	require.Error(t, err)
	require.NotErrorIs(t, err, domain.ErrDuplicatePurchase)
}

func TestRejectPurchaseGuards(t *testing.T) {
	userC := &entities.User{UserID: "CCCCCC"}
	repo := newFakePurchaseRepository(userC)
	svc, _ := newTestService(repo)

	_, err := svc.RejectPurchase(context.Background(), uuid.NewString())
	require.ErrorIs(t, err, domain.ErrPurchaseNotFound)

	_, err = svc.CreatePurchase(context.Background(), domain.CreatePurchaseRequest{PackageID: "basic-001"}, "CCCCCC")
	require.NoError(t, err)

	var purchaseID string
	for id := range repo.purchases {
		purchaseID = id
	}
	_, err = svc.RejectPurchase(context.Background(), purchaseID)
	require.NoError(t, err)

	// Rejection is terminal.
	_, err = svc.RejectPurchase(context.Background(), purchaseID)
	require.ErrorIs(t, err, domain.ErrPurchaseNotPending)
	_, err = svc.ApprovePurchase(context.Background(), purchaseID)
	require.ErrorIs(t, err, domain.ErrPurchaseNotPending)
}

func TestRejectPurchaseDeletesScreenshot(t *testing.T) {
	repo := newFakePurchaseRepository(&entities.User{UserID: "CCCCCC"})
	svc, s3 := newTestService(repo)

	purchase := &entities.Purchase{
		ID:         uuid.New(),
		UserID:     "CCCCCC",
		PackageID:  "basic-001",
		Price:      1000,
		Status:     domain.PurchaseStatusPending,
		Screenshot: "https://bucket.s3.region.amazonaws.com/purchases/purchase-CCCCCC-1.png",
	}
	require.NoError(t, repo.CreatePurchase(context.Background(), purchase))

	_, err := svc.RejectPurchase(context.Background(), purchase.ID.String())
	require.NoError(t, err)
	require.Equal(t, []string{"purchases/purchase-CCCCCC-1.png"}, s3.deleted)

	// Approval keeps the screenshot around.
	another := &entities.Purchase{
		ID:         uuid.New(),
		UserID:     "CCCCCC",
		PackageID:  "pro-001",
		Price:      1000,
		Status:     domain.PurchaseStatusPending,
		Screenshot: "https://bucket.s3.region.amazonaws.com/purchases/purchase-CCCCCC-2.png",
	}
	require.NoError(t, repo.CreatePurchase(context.Background(), another))
	_, err = svc.ApprovePurchase(context.Background(), another.ID.String())
	require.NoError(t, err)
	require.Len(t, s3.deleted, 1)
}

func TestCreatePurchaseUnknownPackage(t *testing.T) {
	svc, _ := newTestService(newFakePurchaseRepository(&entities.User{UserID: "CCCCCC"}))

	_, err := svc.CreatePurchase(context.Background(), domain.CreatePurchaseRequest{PackageID: "no-such-pkg"}, "CCCCCC")
	require.ErrorIs(t, err, domain.ErrPackageNotFound)
}
