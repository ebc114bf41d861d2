package cmd

import (
	"log/slog"
	"time"

	"foodibot/internal/adapters/out/msg91"
	"foodibot/internal/adapters/out/postgres"
	"foodibot/internal/adapters/out/smtpmail"
	"foodibot/internal/adapters/out/whatsapp"
	"foodibot/internal/core/application/usecases/commands"
	"foodibot/internal/core/application/usecases/queries"
	"foodibot/internal/core/domain/services"
	"foodibot/internal/core/ports"
	"foodibot/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	notifier   commands.Notifier
	cartTTL    time.Duration
	logger     *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	notifier, err := createNotifier(configs, logger)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		notifier:   notifier,
		cartTTL:    configs.CartTTL,
		logger:     logger,
	}, nil
}

func createNotifier(configs Config, logger *slog.Logger) (commands.Notifier, error) {
	sms := msg91.NewClient(msg91.Config{
		AuthKey:    configs.MSG91AuthKey,
		TemplateID: configs.MSG91TemplateID,
		SenderID:   configs.MSG91SenderID,
	})

	chatChain := []ports.ChatProvider{
		whatsapp.NewBusinessClient(whatsapp.BusinessConfig{
			Token:   configs.WhatsAppToken,
			PhoneID: configs.WhatsAppPhoneID,
		}),
		whatsapp.NewGreenAPIClient(whatsapp.GreenAPIConfig{
			InstanceID: configs.GreenAPIInstanceID,
			Token:      configs.GreenAPIToken,
		}),
		whatsapp.NewLocalClient(logger),
	}

	email := smtpmail.NewSender(smtpmail.Config{
		User:     configs.EmailUser,
		Password: configs.EmailPassword,
	})

	return services.NewNotificationDispatcher(sms, chatChain, email, configs.DefaultCountryCode, logger)
}

func (c *CompositionRoot) CreateAddItemsCommandHandler() commands.AddItemsCommandHandler {
	var f commands.CartUoWFactory = FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddItemsCommandHandler(f)
}

func (c *CompositionRoot) CreateRemoveItemsCommandHandler() commands.RemoveItemsCommandHandler {
	var f commands.CartUoWFactory = FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveItemsCommandHandler(f)
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	var f commands.CheckoutUoWFactory = FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteOrderCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateCollectPhoneCommandHandler() commands.CollectPhoneCommandHandler {
	var f commands.ContactUoWFactory = FuncContactUoWFactory(func() commands.ContactUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCollectPhoneCommandHandler(f)
}

func (c *CompositionRoot) CreateCollectEmailCommandHandler() commands.CollectEmailCommandHandler {
	var f commands.ContactUoWFactory = FuncContactUoWFactory(func() commands.ContactUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCollectEmailCommandHandler(f)
}

func (c *CompositionRoot) CreateSendNotificationsCommandHandler() commands.SendNotificationsCommandHandler {
	var f commands.CheckoutUoWFactory = FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSendNotificationsCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateGetCartSummaryQueryHandler() queries.GetCartSummaryQueryHandler {
	uow := c.uowFactory.Create()
	return queries.NewGetCartSummaryQueryHandler(uow.CartRepository(), uow.CatalogReader())
}

func (c *CompositionRoot) CreateTrackOrderQueryHandler() queries.TrackOrderQueryHandler {
	return queries.NewTrackOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMenuQueryHandler() queries.GetMenuQueryHandler {
	return queries.NewGetMenuQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderHistoryQueryHandler() queries.GetOrderHistoryQueryHandler {
	return queries.NewGetOrderHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.uowFactory.Create().CartRepository(), c.cartTTL, c.logger)
}

type FuncCartUoWFactory func() commands.CartUoW

func (f FuncCartUoWFactory) Create() commands.CartUoW {
	return f()
}

type FuncContactUoWFactory func() commands.ContactUoW

func (f FuncContactUoWFactory) Create() commands.ContactUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCheckoutUoWFactory func() commands.CheckoutUoW

func (f FuncCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return f()
}
