package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"lucidgpt-be/internal/entity"
	"lucidgpt-be/internal/repository/unitofwork"
	"lucidgpt-be/pkg/database"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

const (
	numClients          = 20
	numEmployees        = 8
	vehiclesPerClient   = 2
	recordsPerVehicle   = 3
	defaultSeedPassword = "password123"
)

var vehicleModels = []string{"Lucid Air Pure", "Lucid Air Touring", "Lucid Air Grand Touring", "Lucid Air Sapphire", "Lucid Gravity"}

var serviceTypes = []string{"Tire Rotation", "Battery Inspection", "Software Update", "Brake Service", "Annual Maintenance", "Alignment Check"}

var servicePlans = []string{"Basic", "Premium", "Platinum"}

var appointmentStatuses = []string{"Scheduled", "Confirmed", "Completed", "Cancelled"}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Truncating existing data...")
	truncateSQL := `TRUNCATE TABLE appointments, service_history, vehicles, employees, clients RESTART IDENTITY CASCADE;`
	if err := db.Exec(truncateSQL).Error; err != nil {
		log.Fatalf("Error: Failed to truncate tables: %v", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(defaultSeedPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Error: Failed to hash seed password: %v", err)
	}

	ctx := context.Background()
	uow := unitofwork.NewUnitOfWork(db)
	if err := uow.Begin(ctx); err != nil {
		log.Fatalf("Error: Failed to begin transaction: %v", err)
	}
	defer uow.Rollback()

	// Employees first so service records and appointments can reference them.
	log.Println("Seeding employees...")
	employees := make([]*entity.Employee, 0, numEmployees)
	for i := 0; i < numEmployees; i++ {
		employee := &entity.Employee{
			Name:          gofakeit.Name(),
			Email:         fmt.Sprintf("employee%d@lucidmotors.com", i+1),
			Phone:         gofakeit.Phone(),
			ProfilePicURL: gofakeit.ImageURL(200, 200),
			PasswordHash:  string(hashed),
			IsSuperuser:   i == 0,
		}
		if err := uow.EmployeeRepository().Create(ctx, employee); err != nil {
			log.Fatalf("Error: Failed to seed employee: %v", err)
		}
		employees = append(employees, employee)
	}

	log.Println("Seeding clients and vehicles...")
	today := time.Now()
	totalVehicles := 0
	for i := 0; i < numClients; i++ {
		client := &entity.Customer{
			Name:         gofakeit.Name(),
			Email:        fmt.Sprintf("client%d@example.com", i+1),
			Phone:        gofakeit.Phone(),
			PasswordHash: string(hashed),
		}
		if err := uow.CustomerRepository().Create(ctx, client); err != nil {
			log.Fatalf("Error: Failed to seed client: %v", err)
		}

		for v := 0; v < vehiclesPerClient; v++ {
			vehicle := &entity.Vehicle{
				Vin:         gofakeit.Regex(`[A-HJ-NPR-Z0-9]{17}`),
				ClientId:    client.Id,
				Model:       vehicleModels[gofakeit.Number(0, len(vehicleModels)-1)],
				Year:        gofakeit.Number(2021, 2026),
				Mileage:     gofakeit.Number(100, 60000),
				WarrantyExp: today.AddDate(gofakeit.Number(1, 4), 0, 0),
				ServicePlan: servicePlans[gofakeit.Number(0, len(servicePlans)-1)],
			}
			if err := uow.VehicleRepository().Create(ctx, vehicle); err != nil {
				log.Fatalf("Error: Failed to seed vehicle: %v", err)
			}
			totalVehicles++

			for r := 0; r < recordsPerVehicle; r++ {
				record := &entity.ServiceRecord{
					Vin:         vehicle.Vin,
					Date:        today.AddDate(0, 0, -gofakeit.Number(30, 720)),
					ServiceType: serviceTypes[gofakeit.Number(0, len(serviceTypes)-1)],
					Notes:       gofakeit.Sentence(8),
					EmployeeId:  employees[gofakeit.Number(0, len(employees)-1)].Id,
				}
				if err := uow.ServiceHistoryRepository().Create(ctx, record); err != nil {
					log.Fatalf("Error: Failed to seed service record: %v", err)
				}
			}

			appointment := &entity.Appointment{
				Vin:         vehicle.Vin,
				Date:        today.AddDate(0, 0, gofakeit.Number(-14, 60)),
				Time:        fmt.Sprintf("%02d:%02d", gofakeit.Number(8, 17), gofakeit.Number(0, 1)*30),
				ServiceType: serviceTypes[gofakeit.Number(0, len(serviceTypes)-1)],
				Status:      appointmentStatuses[gofakeit.Number(0, len(appointmentStatuses)-1)],
				EmployeeId:  employees[gofakeit.Number(0, len(employees)-1)].Id,
			}
			if err := uow.AppointmentRepository().Create(ctx, appointment); err != nil {
				log.Fatalf("Error: Failed to seed appointment: %v", err)
			}
		}
	}

	if err := uow.Commit(); err != nil {
		log.Fatalf("Error: Failed to commit seed transaction: %v", err)
	}

	log.Printf("Seeded %d clients, %d vehicles, %d employees.", numClients, totalVehicles, numEmployees)
	log.Printf("All seeded accounts use password %q.", defaultSeedPassword)
	log.Println("✅ Seeding completed!")
}
