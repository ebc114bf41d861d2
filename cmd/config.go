package cmd

import "time"

type Config struct {
	HTTPPort           string
	DBHost             string
	DBPort             string
	DBUser             string
	DBPassword         string
	DBName             string
	DBSslMode          string
	MSG91AuthKey       string
	MSG91TemplateID    string
	MSG91SenderID      string
	WhatsAppToken      string
	WhatsAppPhoneID    string
	GreenAPIInstanceID string
	GreenAPIToken      string
	EmailUser          string
	EmailPassword      string
	DefaultCountryCode string
	CartTTL            time.Duration
}
