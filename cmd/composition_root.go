package cmd

import (
	"time"

	"gescom/internal/adapters/out/postgres"
	redisadapter "gescom/internal/adapters/out/redis"
	"gescom/internal/core/application/usecases/commands"
	"gescom/internal/core/application/usecases/queries"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB       *gorm.DB
	uowFactory   postgres.GormUnitOfWorkFactory
	sessionStore *redisadapter.RedisSessionStore
	sessionTTL   time.Duration
}

func NewCompositionRoot(
	_ Config,
	gormDB *gorm.DB,
	redisClient *redis.Client,
	sessionTTL time.Duration,
) CompositionRoot {
	return CompositionRoot{
		gormDB:       gormDB,
		uowFactory:   *postgres.NewGormUnitOfWorkFactory(gormDB),
		sessionStore: redisadapter.NewRedisSessionStore(redisClient),
		sessionTTL:   sessionTTL,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateScheduleDeliveryCommandHandler() commands.ScheduleDeliveryCommandHandler {
	var f commands.ScheduleUoWFactory = FuncScheduleUoWFactory(func() commands.ScheduleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewScheduleDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateCompleteDeliveryCommandHandler() commands.CompleteDeliveryCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelDeliveryCommandHandler() commands.CancelDeliveryCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateArticleCommandHandler() commands.CreateArticleCommandHandler {
	var f commands.ArticleUoWFactory = FuncArticleUoWFactory(func() commands.ArticleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateArticleCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateClientCommandHandler() commands.CreateClientCommandHandler {
	var f commands.ClientUoWFactory = FuncClientUoWFactory(func() commands.ClientUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateClientCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateStaffCommandHandler() commands.CreateStaffCommandHandler {
	var f commands.StaffUoWFactory = FuncStaffUoWFactory(func() commands.StaffUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateStaffCommandHandler(f)
}

func (c *CompositionRoot) CreateCreatePositionCommandHandler() commands.CreatePositionCommandHandler {
	var f commands.PositionUoWFactory = FuncPositionUoWFactory(func() commands.PositionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreatePositionCommandHandler(f)
}

func (c *CompositionRoot) CreateDeletePositionCommandHandler() commands.DeletePositionCommandHandler {
	var f commands.DeletePositionUoWFactory = FuncDeletePositionUoWFactory(func() commands.DeletePositionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeletePositionCommandHandler(f)
}

func (c *CompositionRoot) CreateArchiveCancelledOrdersCommandHandler() commands.ArchiveCancelledOrdersCommandHandler {
	var f commands.ArchiveUoWFactory = FuncArchiveUoWFactory(func() commands.ArchiveUoW {
		return c.uowFactory.Create()
	})
	return commands.NewArchiveCancelledOrdersCommandHandler(f)
}

func (c *CompositionRoot) CreateOpenSessionCommandHandler() commands.OpenSessionCommandHandler {
	var f commands.StaffUoWFactory = FuncStaffUoWFactory(func() commands.StaffUoW {
		return c.uowFactory.Create()
	})
	return commands.NewOpenSessionCommandHandler(f, c.sessionStore, c.sessionTTL)
}

func (c *CompositionRoot) CreateCloseSessionCommandHandler() commands.CloseSessionCommandHandler {
	return commands.NewCloseSessionCommandHandler(c.sessionStore)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetReadyOrdersQueryHandler() queries.GetReadyOrdersQueryHandler {
	return queries.NewGetReadyOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeliveriesQueryHandler() queries.GetDeliveriesQueryHandler {
	return queries.NewGetDeliveriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllArticlesQueryHandler() queries.GetAllArticlesQueryHandler {
	return queries.NewGetAllArticlesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllClientsQueryHandler() queries.GetAllClientsQueryHandler {
	return queries.NewGetAllClientsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllStaffQueryHandler() queries.GetAllStaffQueryHandler {
	return queries.NewGetAllStaffQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllPositionsQueryHandler() queries.GetAllPositionsQueryHandler {
	return queries.NewGetAllPositionsQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncScheduleUoWFactory func() commands.ScheduleUoW

func (f FuncScheduleUoWFactory) Create() commands.ScheduleUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncArticleUoWFactory func() commands.ArticleUoW

func (f FuncArticleUoWFactory) Create() commands.ArticleUoW {
	return f()
}

type FuncClientUoWFactory func() commands.ClientUoW

func (f FuncClientUoWFactory) Create() commands.ClientUoW {
	return f()
}

type FuncStaffUoWFactory func() commands.StaffUoW

func (f FuncStaffUoWFactory) Create() commands.StaffUoW {
	return f()
}

type FuncPositionUoWFactory func() commands.PositionUoW

func (f FuncPositionUoWFactory) Create() commands.PositionUoW {
	return f()
}

type FuncDeletePositionUoWFactory func() commands.DeletePositionUoW

func (f FuncDeletePositionUoWFactory) Create() commands.DeletePositionUoW {
	return f()
}

type FuncArchiveUoWFactory func() commands.ArchiveUoW

func (f FuncArchiveUoWFactory) Create() commands.ArchiveUoW {
	return f()
}
