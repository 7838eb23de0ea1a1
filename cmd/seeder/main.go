package main

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/sosfido/sosfido-api/internal/config"
	"github.com/sosfido/sosfido-api/internal/model"
	"github.com/sosfido/sosfido-api/internal/service"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var seedNames = [][2]string{
	{"Maria", "Gonzales"},
	{"Jorge", "Quispe"},
	{"Lucia", "Fernandez"},
	{"Pedro", "Huaman"},
	{"Carmen", "Rojas"},
}

func main() {
	cfg := config.Load()

	// Force DB logging off to avoid noise
	db, err := gorm.Open(postgres.Open(cfg.DB.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	log.Println("✅ Connected to Database")

	// Common password for all demo accounts
	password := "password123"
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("❌ Failed to hash password: %v", err)
	}

	log.Printf("🌱 Seeding %d persons...", len(seedNames))

	var persons []model.Person
	for i, name := range seedNames {
		email := fmt.Sprintf("%s.%s@sosfido.local", strings.ToLower(name[0]), strings.ToLower(name[1]))

		// Check if exists
		var existing model.Account
		if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
			var person model.Person
			if err := db.Where("account_id = ?", existing.ID).First(&person).Error; err == nil {
				persons = append(persons, person)
			}
			continue
		}

		account := model.Account{
			Username:  service.UsernameBase(name[0], name[1]),
			FirstName: name[0],
			LastName:  name[1],
			Email:     email,
			Password:  string(hashedPassword),
			IsActive:  true,
		}
		if err := db.Create(&account).Error; err != nil {
			log.Printf("❌ Failed to create account %s: %v", email, err)
			continue
		}

		place := model.Place{
			Location:  fmt.Sprintf("Av. Demo %d, Arequipa", 100+i),
			Latitude:  "-16.409047",
			Longitude: "-71.537451",
		}
		if err := db.Create(&place).Error; err != nil {
			log.Printf("❌ Failed to create place: %v", err)
			continue
		}

		person := model.Person{
			AccountID:   account.ID,
			AddressID:   &place.ID,
			BornDate:    time.Date(1990+i, time.March, 10, 0, 0, 0, 0, time.UTC),
			PhoneNumber: fmt.Sprintf("95912345%d", i),
		}
		if err := db.Create(&person).Error; err != nil {
			log.Printf("❌ Failed to create person for %s: %v", email, err)
			continue
		}

		persons = append(persons, person)
		log.Printf("✅ Created person: %s | Email: %s | Pass: %s", account.Username, email, password)
	}

	seedReports(db, persons)
	seedProposals(db, persons)

	log.Println("🎉 Seeding completed!")
}

func seedReports(db *gorm.DB, persons []model.Person) {
	if len(persons) < 2 {
		return
	}

	var count int64
	db.Model(&model.AnimalReport{}).Count(&count)
	if count > 0 {
		return
	}

	// One lost-pet report and one stray report
	reports := []struct {
		person   model.Person
		petName  string
		desc     string
		location string
	}{
		{persons[0], "Firulais", "Se perdió cerca del parque, collar rojo", "Parque Selva Alegre, Arequipa"},
		{persons[1], model.NoName, "Perro abandonado en la esquina, parece herido", "Calle Mercaderes 400, Arequipa"},
	}

	for _, r := range reports {
		place := model.Place{
			Location:  r.location,
			Latitude:  "-16.398822",
			Longitude: "-71.536880",
		}
		if err := db.Create(&place).Error; err != nil {
			log.Printf("❌ Failed to create report place: %v", err)
			continue
		}

		report := model.AnimalReport{
			PersonID:    r.person.ID,
			PlaceID:     place.ID,
			PetName:     r.petName,
			Description: r.desc,
			Date:        time.Now(),
		}
		if err := db.Create(&report).Error; err != nil {
			log.Printf("❌ Failed to create report: %v", err)
		}
	}

	log.Println("✅ Created 2 demo animal reports")
}

func seedProposals(db *gorm.DB, persons []model.Person) {
	if len(persons) < 3 {
		return
	}

	var count int64
	db.Model(&model.AdoptionProposal{}).Count(&count)
	if count > 0 {
		return
	}

	proposal := model.AdoptionProposal{
		OwnerID:     persons[2].ID,
		PetName:     "Luna",
		Description: "Gata de dos años, esterilizada, busca hogar",
		Status:      model.StatusPending,
		Date:        time.Now(),
	}
	if err := db.Create(&proposal).Error; err != nil {
		log.Printf("❌ Failed to create proposal: %v", err)
		return
	}

	request := model.AdoptionRequest{
		ProposalID:  proposal.ID,
		RequesterID: persons[0].ID,
		Description: "Tengo patio grande y experiencia con gatos",
		Status:      model.StatusPending,
		Date:        time.Now(),
	}
	if err := db.Create(&request).Error; err != nil {
		log.Printf("❌ Failed to create request: %v", err)
		return
	}

	log.Println("✅ Created demo adoption proposal with a pending request")
}
