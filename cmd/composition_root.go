package cmd

import (
	"context"
	"fmt"
	"log/slog"

	httpadapter "parceltrack/internal/adapters/in/http"
	"parceltrack/internal/adapters/out/jwtauth"
	"parceltrack/internal/adapters/out/postgres"
	"parceltrack/internal/adapters/out/stripegw"
	"parceltrack/internal/core/application/access"
	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/application/usecases/queries"
	"parceltrack/internal/core/domain/model/user"
	"parceltrack/internal/core/ports"
	"parceltrack/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	gateway    ports.PaymentGateway
	verifier   ports.IdentityVerifier
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	verifier, err := jwtauth.NewVerifier(config.JWTSecret, config.JWTIssuer)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("create identity verifier: %w", err)
	}

	gateway, err := stripegw.NewGateway(config.StripeSecretKey)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("create payment gateway: %w", err)
	}

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		gateway:    gateway,
		verifier:   verifier,
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) parcelUoWFactory() commands.ParcelUoWFactory {
	return FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) paymentUoWFactory() commands.PaymentUoWFactory {
	return FuncPaymentUoWFactory(func() commands.PaymentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) assignmentUoWFactory() commands.AssignmentUoWFactory {
	return FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) riderUoWFactory() commands.RiderUoWFactory {
	return FuncRiderUoWFactory(func() commands.RiderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) userUoWFactory() commands.UserUoWFactory {
	return FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) provisioningUoWFactory() commands.ProvisioningUoWFactory {
	return FuncProvisioningUoWFactory(func() commands.ProvisioningUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateParcelCommandHandler() commands.CreateParcelCommandHandler {
	return commands.NewCreateParcelCommandHandler(c.parcelUoWFactory())
}

func (c *CompositionRoot) CreateUpdateParcelStatusCommandHandler() commands.UpdateParcelStatusCommandHandler {
	return commands.NewUpdateParcelStatusCommandHandler(c.parcelUoWFactory())
}

func (c *CompositionRoot) CreateDeleteParcelCommandHandler() commands.DeleteParcelCommandHandler {
	return commands.NewDeleteParcelCommandHandler(c.parcelUoWFactory())
}

func (c *CompositionRoot) CreateRecordPaymentCommandHandler() commands.RecordPaymentCommandHandler {
	return commands.NewRecordPaymentCommandHandler(c.paymentUoWFactory())
}

func (c *CompositionRoot) CreateReconcileWebhookEventCommandHandler() commands.ReconcileWebhookEventCommandHandler {
	return commands.NewReconcileWebhookEventCommandHandler(
		c.paymentUoWFactory(),
		c.gateway,
		c.config.StripeWebhookSecret,
		c.logger,
	)
}

func (c *CompositionRoot) CreateCreatePaymentIntentCommandHandler() commands.CreatePaymentIntentCommandHandler {
	return commands.NewCreatePaymentIntentCommandHandler(c.parcelUoWFactory(), c.gateway, c.config.PaymentCurrency)
}

func (c *CompositionRoot) CreateAssignRiderCommandHandler() commands.AssignRiderCommandHandler {
	return commands.NewAssignRiderCommandHandler(c.assignmentUoWFactory())
}

func (c *CompositionRoot) CreateApplyAsRiderCommandHandler() commands.ApplyAsRiderCommandHandler {
	return commands.NewApplyAsRiderCommandHandler(c.riderUoWFactory())
}

func (c *CompositionRoot) CreateDeleteRiderCommandHandler() commands.DeleteRiderCommandHandler {
	return commands.NewDeleteRiderCommandHandler(c.riderUoWFactory())
}

func (c *CompositionRoot) CreateSetRiderStatusCommandHandler() commands.SetRiderStatusCommandHandler {
	return commands.NewSetRiderStatusCommandHandler(c.provisioningUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateProvisionMissingRiderUsersCommandHandler() commands.ProvisionMissingRiderUsersCommandHandler {
	return commands.NewProvisionMissingRiderUsersCommandHandler(c.provisioningUoWFactory())
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	return commands.NewRegisterUserCommandHandler(c.userUoWFactory())
}

func (c *CompositionRoot) CreateChangeUserRoleCommandHandler() commands.ChangeUserRoleCommandHandler {
	return commands.NewChangeUserRoleCommandHandler(c.userUoWFactory())
}

func (c *CompositionRoot) CreateDeleteUserCommandHandler() commands.DeleteUserCommandHandler {
	return commands.NewDeleteUserCommandHandler(c.userUoWFactory())
}

func (c *CompositionRoot) CreateGetParcelQueryHandler() queries.GetParcelQueryHandler {
	return queries.NewGetParcelQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateTrackParcelQueryHandler() queries.TrackParcelQueryHandler {
	return queries.NewTrackParcelQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListParcelsQueryHandler() queries.ListParcelsQueryHandler {
	return queries.NewListParcelsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListRiderParcelsQueryHandler() queries.ListRiderParcelsQueryHandler {
	return queries.NewListRiderParcelsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListPaymentsQueryHandler() queries.ListPaymentsQueryHandler {
	return queries.NewListPaymentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListRidersQueryHandler() queries.ListRidersQueryHandler {
	return queries.NewListRidersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListUsersQueryHandler() queries.ListUsersQueryHandler {
	return queries.NewListUsersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUserRoleQueryHandler() queries.GetUserRoleQueryHandler {
	return queries.NewGetUserRoleQueryHandler(c.gormDB)
}

// CreateAccessPolicy resolves roles through the user role query.
func (c *CompositionRoot) CreateAccessPolicy() *access.Policy {
	handler := c.CreateGetUserRoleQueryHandler()
	roles := FuncRoleLookup(func(ctx context.Context, email string) (user.Role, error) {
		query, err := queries.NewGetUserRoleQuery(email)
		if err != nil {
			return "", err
		}
		resp, err := handler.Handle(ctx, query)
		if err != nil {
			return "", err
		}
		return resp.Role, nil
	})
	return access.NewPolicy(c.verifier, roles)
}

func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.Handlers{
		CreateParcel:          c.CreateCreateParcelCommandHandler(),
		UpdateParcelStatus:    c.CreateUpdateParcelStatusCommandHandler(),
		RecordPayment:         c.CreateRecordPaymentCommandHandler(),
		AssignRider:           c.CreateAssignRiderCommandHandler(),
		DeleteParcel:          c.CreateDeleteParcelCommandHandler(),
		CreatePaymentIntent:   c.CreateCreatePaymentIntentCommandHandler(),
		ReconcileWebhookEvent: c.CreateReconcileWebhookEventCommandHandler(),
		ApplyAsRider:          c.CreateApplyAsRiderCommandHandler(),
		SetRiderStatus:        c.CreateSetRiderStatusCommandHandler(),
		DeleteRider:           c.CreateDeleteRiderCommandHandler(),
		RegisterUser:          c.CreateRegisterUserCommandHandler(),
		ChangeUserRole:        c.CreateChangeUserRoleCommandHandler(),
		DeleteUser:            c.CreateDeleteUserCommandHandler(),

		GetParcel:        c.CreateGetParcelQueryHandler(),
		TrackParcel:      c.CreateTrackParcelQueryHandler(),
		ListParcels:      c.CreateListParcelsQueryHandler(),
		ListRiderParcels: c.CreateListRiderParcelsQueryHandler(),
		ListPayments:     c.CreateListPaymentsQueryHandler(),
		ListRiders:       c.CreateListRidersQueryHandler(),
		ListUsers:        c.CreateListUsersQueryHandler(),
		GetUserRole:      c.CreateGetUserRoleQueryHandler(),
	}, c.CreateAccessPolicy(), c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateProvisionMissingRiderUsersCommandHandler(),
		c.config.RiderProvisioningSchedule,
		c.logger,
	)
}

type FuncParcelUoWFactory func() commands.ParcelUoW

func (f FuncParcelUoWFactory) Create() commands.ParcelUoW {
	return f()
}

type FuncPaymentUoWFactory func() commands.PaymentUoW

func (f FuncPaymentUoWFactory) Create() commands.PaymentUoW {
	return f()
}

type FuncAssignmentUoWFactory func() commands.AssignmentUoW

func (f FuncAssignmentUoWFactory) Create() commands.AssignmentUoW {
	return f()
}

type FuncRiderUoWFactory func() commands.RiderUoW

func (f FuncRiderUoWFactory) Create() commands.RiderUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncProvisioningUoWFactory func() commands.ProvisioningUoW

func (f FuncProvisioningUoWFactory) Create() commands.ProvisioningUoW {
	return f()
}

type FuncRoleLookup func(ctx context.Context, email string) (user.Role, error)

func (f FuncRoleLookup) GetRole(ctx context.Context, email string) (user.Role, error) {
	return f(ctx, email)
}
