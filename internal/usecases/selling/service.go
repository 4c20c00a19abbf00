package selling

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-commission-api/infrastructure/cache"
	"github.com/vfg2006/sales-commission-api/infrastructure/repository"
	"github.com/vfg2006/sales-commission-api/internal/domain"
	"github.com/vfg2006/sales-commission-api/pkg/log"
	"github.com/vfg2006/sales-commission-api/pkg/utils"
)

type Manager interface {
	ListSellers(ctx context.Context, page, perPage int) (*domain.SellerListResponse, error)
	CreateSeller(ctx context.Context, req domain.CreateSellerRequest) (*domain.Seller, error)
	DeleteSeller(ctx context.Context, id int64) error
	CreateSale(ctx context.Context, req domain.CreateSaleRequest) (*domain.SaleResponse, error)
	ListSales(ctx context.Context, page, perPage int) (*domain.SaleListResponse, error)
	ListSalesBySeller(ctx context.Context, sellerID int64, page, perPage int) (*domain.SaleListResponse, error)
}

type Service struct {
	sellerRepo repository.SellerRepository
	saleRepo   repository.SaleRepository
	cache      cache.SellerListCache
	loc        *time.Location
	now        func() time.Time
}

// NewService recebe o fuso usado para rejeitar datas de venda futuras
func NewService(
	sellerRepo repository.SellerRepository,
	saleRepo repository.SaleRepository,
	sellerCache cache.SellerListCache,
	loc *time.Location,
) *Service {
	if sellerCache == nil {
		sellerCache = cache.NoopSellerListCache{}
	}
	if loc == nil {
		loc = time.UTC
	}

	return &Service{
		sellerRepo: sellerRepo,
		saleRepo:   saleRepo,
		cache:      sellerCache,
		loc:        loc,
		now:        time.Now,
	}
}

// ListSellers lê do cache e, na ausência, consulta o banco e popula a página
func (s *Service) ListSellers(ctx context.Context, page, perPage int) (*domain.SellerListResponse, error) {
	logger := log.ForContext(ctx)

	cached, ok, err := s.cache.Get(ctx, page, perPage)
	if err != nil {
		logger.WithError(err).Warn("Erro ao ler cache de vendedores, consultando o banco")
	}
	if ok {
		return cached, nil
	}

	sellers, total, err := s.sellerRepo.ListPaginated(ctx, page, perPage)
	if err != nil {
		return nil, databaseError(err)
	}

	list := &domain.SellerListResponse{
		Data:       sellers,
		Pagination: domain.NewPagination(page, perPage, total),
	}

	if err := s.cache.Set(ctx, page, perPage, list); err != nil {
		logger.WithError(err).Warn("Erro ao gravar cache de vendedores")
	}

	return list, nil
}

func (s *Service) CreateSeller(ctx context.Context, req domain.CreateSellerRequest) (*domain.Seller, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	exists, err := s.sellerRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, databaseError(err)
	}
	if exists {
		return nil, utils.ValidationErrors{"email": {msgEmailTaken}}
	}

	seller, err := s.sellerRepo.Create(ctx, &domain.Seller{
		Name:           req.Name,
		Email:          req.Email,
		CommissionRate: domain.DefaultCommissionRate,
	})
	if errors.Is(err, repository.ErrDuplicateEmail) {
		return nil, utils.ValidationErrors{"email": {msgEmailTaken}}
	}
	if err != nil {
		return nil, databaseError(err)
	}

	s.invalidateSellers(ctx)

	log.ForContext(ctx).WithField("seller_id", seller.ID).Info("Vendedor cadastrado")

	return seller, nil
}

// DeleteSeller faz a remoção lógica; vendas existentes continuam vinculadas
func (s *Service) DeleteSeller(ctx context.Context, id int64) error {
	deleted, err := s.sellerRepo.SoftDelete(ctx, id)
	if err != nil {
		return databaseError(err)
	}
	if !deleted {
		return ErrSellerNotFound
	}

	s.invalidateSellers(ctx)

	log.ForContext(ctx).WithField("seller_id", id).Info("Vendedor removido")

	return nil
}

func (s *Service) invalidateSellers(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		log.ForContext(ctx).WithError(err).Warn("Erro ao invalidar cache de vendedores")
	}
}

func (s *Service) CreateSale(ctx context.Context, req domain.CreateSaleRequest) (*domain.SaleResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	// amount chega como número ou string; o formato é checado antes de ir ao banco
	amount := req.Amount
	if amount.Exponent() < -domain.MoneyScale {
		return nil, utils.ValidationErrors{"amount": {msgAmountScale}}
	}

	verr := utils.ValidationErrors{}

	if amount.LessThan(domain.MinSaleAmount) || amount.GreaterThan(domain.MaxSaleAmount) {
		verr.Add("amount", msgAmountRange)
	}

	saleDate, _ := time.Parse(time.DateOnly, req.SaleDate)
	if saleDate.After(domain.CalendarDate(s.now().In(s.loc))) {
		verr.Add("sale_date", msgSaleDateFuture)
	}

	seller, err := s.sellerRepo.FindByID(ctx, req.SellerID)
	if err != nil {
		return nil, databaseError(err)
	}
	if seller == nil {
		verr.Add("seller_id", msgSellerInvalid)
	}

	if len(verr) > 0 {
		return nil, verr
	}

	sale, err := s.saleRepo.Create(ctx, &domain.Sale{
		SellerID: seller.ID,
		Amount:   amount,
		SaleDate: saleDate,
	})
	if err != nil {
		return nil, databaseError(err)
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"seller_id": seller.ID,
		"sale_id":   sale.ID,
	}).Info("Venda registrada")

	return domain.NewSaleResponse(sale, seller), nil
}

func (s *Service) ListSales(ctx context.Context, page, perPage int) (*domain.SaleListResponse, error) {
	sales, total, err := s.saleRepo.ListPaginated(ctx, page, perPage)
	if err != nil {
		return nil, databaseError(err)
	}

	data := make([]*domain.SaleResponse, 0, len(sales))
	for _, sale := range sales {
		data = append(data, domain.NewSaleResponse(sale, sale.Seller))
	}

	return &domain.SaleListResponse{
		Data:       data,
		Pagination: domain.NewPagination(page, perPage, total),
	}, nil
}

func (s *Service) ListSalesBySeller(ctx context.Context, sellerID int64, page, perPage int) (*domain.SaleListResponse, error) {
	seller, err := s.sellerRepo.FindByID(ctx, sellerID)
	if err != nil {
		return nil, databaseError(err)
	}
	if seller == nil {
		return nil, ErrSellerNotFound
	}

	sales, total, err := s.saleRepo.ListBySeller(ctx, sellerID, page, perPage)
	if err != nil {
		return nil, databaseError(err)
	}

	data := make([]*domain.SaleResponse, 0, len(sales))
	for _, sale := range sales {
		data = append(data, domain.NewSaleResponse(sale, seller))
	}

	return &domain.SaleListResponse{
		Data:       data,
		Pagination: domain.NewPagination(page, perPage, total),
	}, nil
}
