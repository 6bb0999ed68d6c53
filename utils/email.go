package utils

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"text/template"

	"gopkg.in/gomail.v2"
)

// OrderConfirmationData feeds the confirmation email template.
type OrderConfirmationData struct {
	OrderID    string
	Items      []OrderLine
	Total      float64
	StatusLink string
}

type OrderLine struct {
	Quantity int
	Title    string
	Price    float64
}

var orderConfirmationTmpl = template.Must(template.New("order_confirmation").Parse(
	`Thank you for your order!

Order Details:
{{range .Items}}- {{.Quantity}}x {{.Title}} (R{{printf "%.2f" .Price}})
{{end}}
Total: R{{printf "%.2f" .Total}}

You can view your order status here: {{.StatusLink}}

Thank you for choosing Annie's Bakery!`))

// SendOrderConfirmationEmail emails the customer after a successful payment.
// Runs async so it never delays the response.
func SendOrderConfirmationEmail(to string, data OrderConfirmationData) {
	go func() {
		var body bytes.Buffer
		if err := orderConfirmationTmpl.Execute(&body, data); err != nil {
			log.Printf("failed to render confirmation email: %v", err)
			return
		}
		sendMail(to, "Order Confirmation - "+data.OrderID, body.String())
	}()
}

// SendCustomOrderAlert notifies the shop about a new custom order intake.
func SendCustomOrderAlert(customerName string, lines []string) {
	to := os.Getenv("ADMIN_EMAIL")
	body := fmt.Sprintf("New custom cake order received:\n\n%s", strings.Join(lines, "\n"))
	go sendMail(to, "New Custom Cake Order from "+customerName, body)
}

// SendContactMessage relays a contact form submission to the shop inbox.
func SendContactMessage(name, email, phone, subject, message string) {
	to := os.Getenv("ADMIN_EMAIL")
	if subject == "" {
		subject = "General Inquiry"
	}
	body := fmt.Sprintf("Contact form submission:\n\nFrom: %s (%s)\nPhone: %s\n\nMessage:\n%s",
		name, email, phone, message)
	go sendMail(to, "Contact Form: "+subject, body)
}

func sendMail(to, subject, body string) {
	host := os.Getenv("SMTP_HOST")
	portStr := os.Getenv("SMTP_PORT")
	username := os.Getenv("SMTP_USERNAME")
	password := os.Getenv("SMTP_PASSWORD")
	from := os.Getenv("SMTP_FROM")

	if host == "" || portStr == "" || to == "" {
		log.Println("SMTP not configured, skipping email:", subject)
		return
	}
	port, _ := strconv.Atoi(portStr)

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(host, port, username, password)
	if err := d.DialAndSend(m); err != nil {
		log.Printf("failed to send email %q: %v", subject, err)
	}
}
