package service

import (
	"context"
	"strconv"

	"lucidgpt-be/internal/dto"
	"lucidgpt-be/internal/entity"
	"lucidgpt-be/internal/pkg/auth"
	"lucidgpt-be/internal/pkg/logger"
	"lucidgpt-be/internal/repository/specification"
	"lucidgpt-be/internal/repository/unitofwork"

	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Login(ctx context.Context, req *dto.TokenRequest) (*dto.TokenResponse, error)
	Resolve(ctx context.Context, claims *auth.Claims) (*entity.Principal, error)
}

type authService struct {
	uowFactory unitofwork.RepositoryFactory
	tokens     *auth.TokenService
	log        logger.ILogger
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, tokens *auth.TokenService, log logger.ILogger) IAuthService {
	return &authService{
		uowFactory: uowFactory,
		tokens:     tokens,
		log:        log,
	}
}

// Login authenticates a username against the clients table first and the
// employees table second, mirroring the two principal kinds. All failure
// modes collapse into ErrInvalidCredentials.
func (s *authService) Login(ctx context.Context, req *dto.TokenRequest) (*dto.TokenResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	var (
		id           int
		passwordHash string
		role         auth.Role
	)

	customer, err := uow.CustomerRepository().FindOne(ctx, specification.ByEmail{Email: req.Username})
	if err != nil {
		return nil, err
	}
	if customer != nil {
		id, passwordHash, role = customer.Id, customer.PasswordHash, auth.RoleCustomer
	} else {
		employee, err := uow.EmployeeRepository().FindOne(ctx, specification.ByEmail{Email: req.Username})
		if err != nil {
			return nil, err
		}
		if employee == nil {
			return nil, ErrInvalidCredentials
		}
		id, passwordHash, role = employee.Id, employee.PasswordHash, auth.RoleEmployee
	}

	if err := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	// Subject travels as a string even though the stores key on integers.
	token, err := s.tokens.Issue(strconv.Itoa(id), role)
	if err != nil {
		return nil, err
	}

	s.log.Info("auth", "token issued", map[string]interface{}{
		"subject": id,
		"role":    string(role),
	})

	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	}, nil
}

// Resolve dispatches on the token role to exactly one backing table and
// fails closed: unknown roles and vanished rows are both auth errors.
func (s *authService) Resolve(ctx context.Context, claims *auth.Claims) (*entity.Principal, error) {
	id, err := strconv.Atoi(claims.Subject)
	if err != nil {
		return nil, auth.ErrMalformed
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	switch claims.Role {
	case auth.RoleCustomer:
		customer, err := uow.CustomerRepository().FindOne(ctx, specification.ByID{ID: id})
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, auth.ErrPrincipalNotFound
		}
		return &entity.Principal{
			Id:    customer.Id,
			Role:  auth.RoleCustomer,
			Name:  customer.Name,
			Email: customer.Email,
		}, nil

	case auth.RoleEmployee:
		employee, err := uow.EmployeeRepository().FindOne(ctx, specification.ByID{ID: id})
		if err != nil {
			return nil, err
		}
		if employee == nil {
			return nil, auth.ErrPrincipalNotFound
		}
		return &entity.Principal{
			Id:          employee.Id,
			Role:        auth.RoleEmployee,
			Name:        employee.Name,
			Email:       employee.Email,
			IsSuperuser: employee.IsSuperuser,
		}, nil

	default:
		return nil, auth.ErrUnknownRole
	}
}
