package main

import (
	"log"
	"os"

	"legal-research-be/internal/model"
	"legal-research-be/pkg/database"

	"github.com/joho/godotenv"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// seedCases populates a small demo corpus. Dockets and years match the real
// decisions so docket and year follow-ups can be exercised end to end.
func seedCases(db *gorm.DB) error {
	cases := []model.CaseDocument{
		{
			Caption:      "Apple Inc. v. Samsung Electronics Co.",
			DocketNumber: "11-1846",
			Court:        "N.D. Cal.",
			DecidedYear:  2012,
			Summary:      "Smartphone design patent infringement; jury awarded damages over design patents.",
			Metadata:     datatypes.JSON([]byte(`{"area":"patent"}`)),
		},
		{
			Caption:      "Apple Inc. v. Samsung Electronics Co.",
			DocketNumber: "15-777",
			Court:        "Supreme Court",
			DecidedYear:  2016,
			Summary:      "Design patent damages under 35 U.S.C. 289 limited to the relevant article of manufacture.",
			Metadata:     datatypes.JSON([]byte(`{"area":"patent"}`)),
		},
		{
			Caption:      "Apple Inc. v. Motorola, Inc.",
			DocketNumber: "12-1548",
			Court:        "Fed. Cir.",
			DecidedYear:  2014,
			Summary:      "FRAND licensing and injunction standards for standard-essential patents.",
			Metadata:     datatypes.JSON([]byte(`{"area":"patent"}`)),
		},
		{
			Caption:      "Google LLC v. Oracle America, Inc.",
			DocketNumber: "18-956",
			Court:        "Supreme Court",
			DecidedYear:  2021,
			Summary:      "Copying the Java SE API declaring code was fair use.",
			Metadata:     datatypes.JSON([]byte(`{"area":"copyright"}`)),
		},
		{
			Caption:      "Impression Products, Inc. v. Lexmark International, Inc.",
			DocketNumber: "15-1189",
			Court:        "Supreme Court",
			DecidedYear:  2017,
			Summary:      "Patent exhaustion applies to all sales, domestic and foreign.",
			Metadata:     datatypes.JSON([]byte(`{"area":"patent"}`)),
		},
	}

	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&cases).Error
}

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

	if err := seedCases(db); err != nil {
		log.Fatalf("Error: Failed to seed case documents: %v", err)
	}

	log.Println("✅ Success: case corpus seeded.")
}
