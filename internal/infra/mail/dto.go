package mail

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
}

type StageChangedEmailData struct {
	LeadName   string
	StageLabel string
}
