package helper

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/gomail.v2"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"neurolink-speak/internal/model"
)

func GetConfig(key string) string {
	// load .env file
	err := godotenv.Load(".env")
	if err != nil {
		fmt.Print("Error loading .env file")
	}
	return os.Getenv(key)
}

// GetConfigDefault returns the configured value for key, or fallback
// if the key is not set.
func GetConfigDefault(key, fallback string) string {
	if value := GetConfig(key); value != "" {
		return value
	}
	return fallback
}

var DB *gorm.DB

func ConnectDB() {
	var err error
	dsn := fmt.Sprintf("host=%s user=%s dbname=%s sslmode=disable",
		GetConfigDefault("DB_HOST", "localhost"), GetConfig("DB_USER"), GetConfig("DB_NAME"))

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})

	if err != nil {
		fmt.Printf("%s\n", dsn)
		panic("failed to connect database")
	}

	fmt.Println("Connection Opened to Database")
	DB.AutoMigrate(&model.User{}, &model.ConversationLog{})
	fmt.Println("Database Migrated")
}

func SendEmail(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", fmt.Sprintf("NeuroLink Speak <%s>", GetConfig("SMTP_FROM")))
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("[NeuroLink Speak] %v", subject))
	m.SetBody("text/html", body)

	smtpPort, _ := strconv.ParseInt(GetConfig("SMTP_PORT"), 10, 32)

	d := gomail.NewDialer(GetConfig("SMTP_HOST"), int(smtpPort), GetConfig("SMTP_USER"), GetConfig("SMTP_PASSWORD"))

	if err := d.DialAndSend(m); err != nil {
		return err
	}

	return nil
}

// AudioFilename returns the artifact path for the audio of one
// conversation exchange.
func AudioFilename(userID uint, direction string, sequence int) string {
	return fmt.Sprintf("%s/%d_%s_%04d.wav", GetConfig("DATA_DIR"), userID, direction, sequence)
}
