package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	apphttp "github.com/bossnaboss212/dernier-occase/internal/adapters/in/http"
	"github.com/bossnaboss212/dernier-occase/internal/adapters/out/dispatch"
	"github.com/bossnaboss212/dernier-occase/internal/adapters/out/memory"
	"github.com/bossnaboss212/dernier-occase/internal/adapters/out/postgres"
	"github.com/bossnaboss212/dernier-occase/internal/adapters/out/postgres/feeschedulerepo"
	"github.com/bossnaboss212/dernier-occase/internal/adapters/out/postgres/orderrepo"
	"github.com/bossnaboss212/dernier-occase/internal/adapters/out/postgres/productrepo"
	"github.com/bossnaboss212/dernier-occase/internal/adapters/out/postgres/reviewrepo"
	"github.com/bossnaboss212/dernier-occase/internal/adapters/out/postgres/treasuryrepo"
	"github.com/bossnaboss212/dernier-occase/internal/core/application/usecases/commands"
	"github.com/bossnaboss212/dernier-occase/internal/core/application/usecases/queries"
	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/kernel"
	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/pricing"
	"github.com/bossnaboss212/dernier-occase/internal/core/domain/model/product"
	"github.com/bossnaboss212/dernier-occase/internal/core/ports"
	"github.com/bossnaboss212/dernier-occase/internal/jobs"
	"github.com/bossnaboss212/dernier-occase/internal/pkg/errs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB        *gorm.DB
	uowFactory    postgres.GormUnitOfWorkFactory
	cartStore     *memory.InMemoryCartStore
	sessionStore  *memory.InMemorySessionStore
	roleDirectory *memory.InMemoryRoleDirectory
	notifier      *dispatch.RetryNotifier
	policy        pricing.DiscountPolicy
	sessionTTL    time.Duration
	logger        *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB) (CompositionRoot, error) {
	s, err := parseSettings(configs)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("invalid configuration: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// The dispatch chain is always queue-fronted so a flaky webhook never
	// fails a checkout commit; with the log sink the queue simply stays empty.
	var sink ports.DispatchNotifier = dispatch.NewLogNotifier(logger)
	if s.webhookURL != "" {
		sink = dispatch.NewWebhookNotifier(s.webhookURL)
	}

	return CompositionRoot{
		gormDB:        gormDB,
		uowFactory:    *postgres.NewGormUnitOfWorkFactory(gormDB),
		cartStore:     memory.NewInMemoryCartStore(),
		sessionStore:  memory.NewInMemorySessionStore(),
		roleDirectory: memory.NewInMemoryRoleDirectory(s.ownerIDs),
		notifier:      dispatch.NewRetryNotifier(sink, logger),
		policy:        s.policy,
		sessionTTL:    s.sessionTTL,
		logger:        logger,
	}, nil
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	return commands.NewCreateProductCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateSetProductPriceCommandHandler() commands.SetProductPriceCommandHandler {
	return commands.NewSetProductPriceCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateSetProductStockCommandHandler() commands.SetProductStockCommandHandler {
	return commands.NewSetProductStockCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateDeactivateProductCommandHandler() commands.DeactivateProductCommandHandler {
	return commands.NewDeactivateProductCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateReactivateProductCommandHandler() commands.ReactivateProductCommandHandler {
	return commands.NewReactivateProductCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateReplaceFeeScheduleCommandHandler() commands.ReplaceFeeScheduleCommandHandler {
	var f commands.FeeScheduleUoWFactory = FuncFeeScheduleUoWFactory(func() commands.FeeScheduleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReplaceFeeScheduleCommandHandler(f)
}

func (c *CompositionRoot) CreateAddCartItemCommandHandler() commands.AddCartItemCommandHandler {
	return commands.NewAddCartItemCommandHandler(c.productUoWFactory(), c.cartStore)
}

func (c *CompositionRoot) CreateClearCartCommandHandler() commands.ClearCartCommandHandler {
	return commands.NewClearCartCommandHandler(c.cartStore)
}

func (c *CompositionRoot) CreateStartCheckoutCommandHandler() commands.StartCheckoutCommandHandler {
	return commands.NewStartCheckoutCommandHandler(c.cartStore, c.sessionStore)
}

func (c *CompositionRoot) CreateSubmitCheckoutStepCommandHandler() commands.SubmitCheckoutStepCommandHandler {
	var f commands.CheckoutUoWFactory = FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitCheckoutStepCommandHandler(
		f,
		c.cartStore,
		c.sessionStore,
		c.policy,
		c.notifier,
	)
}

func (c *CompositionRoot) CreateAssignOrderCommandHandler() commands.AssignOrderCommandHandler {
	return commands.NewAssignOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateMarkOrderOutForDeliveryCommandHandler() commands.MarkOrderOutForDeliveryCommandHandler {
	return commands.NewMarkOrderOutForDeliveryCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateConfirmOrderDeliveredCommandHandler() commands.ConfirmOrderDeliveredCommandHandler {
	var f commands.SettlementUoWFactory = FuncSettlementUoWFactory(func() commands.SettlementUoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmOrderDeliveredCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateSetCustomerRoleCommandHandler() commands.SetCustomerRoleCommandHandler {
	return commands.NewSetCustomerRoleCommandHandler(c.roleDirectory)
}

func (c *CompositionRoot) CreateLeaveReviewCommandHandler() commands.LeaveReviewCommandHandler {
	var f commands.ReviewUoWFactory = FuncReviewUoWFactory(func() commands.ReviewUoW {
		return c.uowFactory.Create()
	})
	return commands.NewLeaveReviewCommandHandler(f)
}

func (c *CompositionRoot) CreateGetCatalogQueryHandler() queries.GetCatalogQueryHandler {
	return queries.NewGetCatalogQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCartQueryHandler() queries.GetCartQueryHandler {
	return queries.NewGetCartQueryHandler(c.cartStore, c.gormDB)
}

func (c *CompositionRoot) CreateGetFeeScheduleQueryHandler() queries.GetFeeScheduleQueryHandler {
	return queries.NewGetFeeScheduleQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOpenOrdersQueryHandler() queries.GetOpenOrdersQueryHandler {
	return queries.NewGetOpenOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRevenueReportQueryHandler() queries.GetRevenueReportQueryHandler {
	return queries.NewGetRevenueReportQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomerReviewsQueryHandler() queries.GetCustomerReviewsQueryHandler {
	return queries.NewGetCustomerReviewsQueryHandler(c.gormDB)
}

// CreateHTTPHandlers bundles every use case handler the web server routes to.
func (c *CompositionRoot) CreateHTTPHandlers() apphttp.Handlers {
	return apphttp.Handlers{
		CreateProduct:           c.CreateCreateProductCommandHandler(),
		SetProductPrice:         c.CreateSetProductPriceCommandHandler(),
		SetProductStock:         c.CreateSetProductStockCommandHandler(),
		DeactivateProduct:       c.CreateDeactivateProductCommandHandler(),
		ReactivateProduct:       c.CreateReactivateProductCommandHandler(),
		ReplaceFeeSchedule:      c.CreateReplaceFeeScheduleCommandHandler(),
		AddCartItem:             c.CreateAddCartItemCommandHandler(),
		ClearCart:               c.CreateClearCartCommandHandler(),
		StartCheckout:           c.CreateStartCheckoutCommandHandler(),
		SubmitCheckoutStep:      c.CreateSubmitCheckoutStepCommandHandler(),
		AssignOrder:             c.CreateAssignOrderCommandHandler(),
		MarkOrderOutForDelivery: c.CreateMarkOrderOutForDeliveryCommandHandler(),
		ConfirmOrderDelivered:   c.CreateConfirmOrderDeliveredCommandHandler(),
		CancelOrder:             c.CreateCancelOrderCommandHandler(),
		SetCustomerRole:         c.CreateSetCustomerRoleCommandHandler(),
		LeaveReview:             c.CreateLeaveReviewCommandHandler(),

		GetCatalog:         c.CreateGetCatalogQueryHandler(),
		GetCart:            c.CreateGetCartQueryHandler(),
		GetFeeSchedule:     c.CreateGetFeeScheduleQueryHandler(),
		GetOpenOrders:      c.CreateGetOpenOrdersQueryHandler(),
		GetRevenueReport:   c.CreateGetRevenueReportQueryHandler(),
		GetCustomerReviews: c.CreateGetCustomerReviewsQueryHandler(),
	}
}

// RoleDirectory exposes the role lookup used by the web server's gates.
func (c *CompositionRoot) RoleDirectory() ports.RoleDirectory {
	return c.roleDirectory
}

// CreateJobManager wires the background jobs: the dispatch retry queue
// flusher and the stale checkout session sweeper.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.notifier, c.sessionStore, c.sessionTTL, c.logger)
}

// MigrateAndSeed prepares the database schema and, on a fresh catalog,
// installs the standard products and the default fee schedule so the
// storefront is usable immediately after first boot.
func (c *CompositionRoot) MigrateAndSeed(ctx context.Context) error {
	err := c.gormDB.WithContext(ctx).AutoMigrate(
		&productrepo.ProductDTO{},
		&orderrepo.OrderDTO{},
		&treasuryrepo.EntryDTO{},
		&feeschedulerepo.FeeScheduleDTO{},
		&reviewrepo.ReviewDTO{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	if err := c.seedCatalog(ctx); err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}

	if err := c.seedFeeSchedule(ctx); err != nil {
		return fmt.Errorf("failed to seed fee schedule: %w", err)
	}

	return nil
}

func (c *CompositionRoot) seedCatalog(ctx context.Context) error {
	var count int64
	if err := c.gormDB.WithContext(ctx).Model(&productrepo.ProductDTO{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	defaults := []struct {
		name     string
		price    string
		stockQty int
	}{
		{"Bouteille 1.0L", "2.50", 50},
		{"Pack 6x0.5L", "6.90", 30},
		{"Pod arôme citron", "3.20", 100},
	}

	uow := c.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	for _, d := range defaults {
		price, err := kernel.NewMoneyFromString(d.price)
		if err != nil {
			return err
		}
		p, err := product.NewProduct(kernel.NewUUID(), d.name, price, d.stockQty)
		if err != nil {
			return err
		}
		if err := uow.ProductRepository().Add(ctx, p); err != nil {
			return err
		}
	}

	c.logger.InfoContext(ctx, "Default catalog seeded", "products", len(defaults))
	return uow.Commit(ctx)
}

func (c *CompositionRoot) seedFeeSchedule(ctx context.Context) error {
	uow := c.uowFactory.Create()

	_, err := uow.FeeScheduleRepository().Get(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	schedule, err := defaultFeeSchedule()
	if err != nil {
		return err
	}

	if err := uow.FeeScheduleRepository().Replace(ctx, schedule); err != nil {
		return err
	}

	c.logger.InfoContext(ctx, "Default fee schedule seeded", "free_zone", schedule.FreeZone())
	return nil
}

func defaultFeeSchedule() (*pricing.Schedule, error) {
	steps := []struct {
		maxDistanceKm float64
		fee           string
	}{
		{20, "20.00"},
		{30, "30.00"},
		{50, "50.00"},
	}

	tiers := make([]pricing.Tier, 0, len(steps))
	for _, s := range steps {
		fee, err := kernel.NewMoneyFromString(s.fee)
		if err != nil {
			return nil, err
		}
		tier, err := pricing.NewTier(s.maxDistanceKm, fee)
		if err != nil {
			return nil, err
		}
		tiers = append(tiers, tier)
	}

	return pricing.NewSchedule("Millau", tiers, kernel.ZeroMoney())
}

// settings is the typed view of Config. Absent discount values fall back to
// the standard storefront configuration: flat 10.00 discount switched on,
// promo code TRESORERIE10 worth 10.00, loyalty bonus every 10th order worth
// 10.00 but switched off.
type settings struct {
	ownerIDs   []kernel.UUID
	webhookURL string
	sessionTTL time.Duration
	policy     pricing.DiscountPolicy
}

func parseSettings(configs Config) (settings, error) {
	ownerIDs, err := parseOwnerIDs(configs.OwnerIDs)
	if err != nil {
		return settings{}, err
	}

	ttlMinutes, err := parseIntOr("SESSION_TTL_MINUTES", configs.SessionTTLMinutes, 30)
	if err != nil {
		return settings{}, err
	}
	if ttlMinutes <= 0 {
		return settings{}, errs.NewValueIsInvalidError("SESSION_TTL_MINUTES")
	}

	globalActive, err := parseBoolOr("DISCOUNT_GLOBAL_ACTIVE", configs.DiscountGlobalActive, true)
	if err != nil {
		return settings{}, err
	}
	globalAmount, err := parseMoneyOr("DISCOUNT_GLOBAL_AMOUNT", configs.DiscountGlobalAmount, "10.00")
	if err != nil {
		return settings{}, err
	}

	promoCode := configs.DiscountPromoCode
	if promoCode == "" {
		promoCode = "TRESORERIE10"
	}
	promoAmount, err := parseMoneyOr("DISCOUNT_PROMO_AMOUNT", configs.DiscountPromoAmount, "10.00")
	if err != nil {
		return settings{}, err
	}

	loyaltyEnabled, err := parseBoolOr("DISCOUNT_LOYALTY_ENABLED", configs.DiscountLoyaltyEnabled, false)
	if err != nil {
		return settings{}, err
	}
	loyaltyEvery, err := parseIntOr("DISCOUNT_LOYALTY_EVERY", configs.DiscountLoyaltyEvery, 10)
	if err != nil {
		return settings{}, err
	}
	loyaltyAmount, err := parseMoneyOr("DISCOUNT_LOYALTY_AMOUNT", configs.DiscountLoyaltyAmount, "10.00")
	if err != nil {
		return settings{}, err
	}

	policy, err := pricing.NewDiscountPolicy(
		globalActive,
		globalAmount,
		promoCode,
		promoAmount,
		loyaltyEnabled,
		loyaltyEvery,
		loyaltyAmount,
	)
	if err != nil {
		return settings{}, err
	}

	return settings{
		ownerIDs:   ownerIDs,
		webhookURL: configs.DispatchWebhookURL,
		sessionTTL: time.Duration(ttlMinutes) * time.Minute,
		policy:     policy,
	}, nil
}

func parseOwnerIDs(raw string) ([]kernel.UUID, error) {
	ids := make([]kernel.UUID, 0)
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := kernel.UUIDFromString(part)
		if err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("OWNER_IDS", err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func parseBoolOr(name, raw string, fallback bool) (bool, error) {
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return v, nil
}

func parseIntOr(name, raw string, fallback int) (int, error) {
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return v, nil
}

func parseMoneyOr(name, raw, fallback string) (kernel.Money, error) {
	if raw == "" {
		raw = fallback
	}
	v, err := kernel.NewMoneyFromString(raw)
	if err != nil {
		return kernel.Money{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return v, nil
}

func (c *CompositionRoot) productUoWFactory() commands.ProductUoWFactory {
	return FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncSettlementUoWFactory func() commands.SettlementUoW

func (f FuncSettlementUoWFactory) Create() commands.SettlementUoW {
	return f()
}

type FuncCheckoutUoWFactory func() commands.CheckoutUoW

func (f FuncCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return f()
}

type FuncFeeScheduleUoWFactory func() commands.FeeScheduleUoW

func (f FuncFeeScheduleUoWFactory) Create() commands.FeeScheduleUoW {
	return f()
}

type FuncReviewUoWFactory func() commands.ReviewUoW

func (f FuncReviewUoWFactory) Create() commands.ReviewUoW {
	return f()
}
