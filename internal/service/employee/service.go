package employee

import (
	"context"
	"time"

	"github.com/hydroseal/erp-backend-go/internal/domain/employee"
	"github.com/hydroseal/erp-backend-go/internal/pkg/database"
)

type EmployeeServiceImpl struct {
	db           *database.DB
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(db *database.DB, employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{db: db, employeeRepo: employeeRepo}
}

func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	joinDate, _ := time.Parse("2006-01-02", req.JoinDate)
	emp, err := s.employeeRepo.Create(ctx, employee.Employee{
		EmployeeCode: req.EmployeeCode,
		FullName:     req.FullName,
		Phone:        req.Phone,
		Address:      req.Address,
		Designation:  req.Designation,
		JoinDate:     joinDate,
		Status:       employee.StatusActive,
		BasicSalary:  req.BasicSalary,
		Allowances:   req.Allowances,
		Deductions:   req.Deductions,
		HoldPercent:  req.HoldPercent,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toEmployeeResponse(emp), nil
}

func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toEmployeeResponse(emp), nil
}

func (s *EmployeeServiceImpl) List(ctx context.Context, filter employee.ListEmployeeFilter) (employee.ListEmployeeResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	employees, total, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return employee.ListEmployeeResponse{}, err
	}

	resp := employee.ListEmployeeResponse{
		Data:       make([]employee.EmployeeResponse, 0, len(employees)),
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}
	for _, emp := range employees {
		resp.Data = append(resp.Data, toEmployeeResponse(emp))
	}
	return resp, nil
}

func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.employeeRepo.Update(ctx, req)
}

func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	return s.employeeRepo.Delete(ctx, id)
}

func toEmployeeResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:              emp.ID,
		EmployeeCode:    emp.EmployeeCode,
		FullName:        emp.FullName,
		Phone:           emp.Phone,
		Address:         emp.Address,
		Designation:     emp.Designation,
		JoinDate:        emp.JoinDate.Format("2006-01-02"),
		Status:          string(emp.Status),
		BasicSalary:     emp.BasicSalary,
		Allowances:      emp.Allowances,
		Deductions:      emp.Deductions,
		TotalAllowances: emp.TotalAllowances(),
		TotalDeductions: emp.TotalDeductions(),
		HoldPercent:     emp.HoldPercent,
	}
}
