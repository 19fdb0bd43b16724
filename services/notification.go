package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/nurlanmnn/roomate-sub001/config"
	"github.com/nurlanmnn/roomate-sub001/database"
	"github.com/nurlanmnn/roomate-sub001/models"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/option"
)

type NotificationService struct {
	messaging *messaging.Client
}

var notifService *NotificationService

func GetNotificationService() *NotificationService {
	if notifService == nil {
		notifService = &NotificationService{}
	}
	return notifService
}

// InitNotificationService sets up the Firebase messaging client. Push
// sends are skipped when credentials are not configured.
func InitNotificationService(ctx context.Context) {
	ns := GetNotificationService()

	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(config.AppConfig.FirebaseCredPath))
	if err != nil {
		logrus.Warn("⚠️  Firebase not configured, push notifications disabled: ", err)
		return
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		logrus.Warn("⚠️  Firebase messaging unavailable: ", err)
		return
	}

	ns.messaging = client
	logrus.Info("✅ Firebase messaging initialized")
}

// ============================================================
// PUSH NOTIFICATIONS via Firebase Cloud Messaging
// ============================================================

func (ns *NotificationService) sendPush(fcmToken string, title string, body string, data map[string]string) {
	if ns.messaging == nil || fcmToken == "" {
		return
	}

	msg := &messaging.Message{
		Token: fcmToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	if _, err := ns.messaging.Send(context.Background(), msg); err != nil {
		logrus.Warn("⚠️  FCM send error: ", err)
		return
	}

	logrus.Debug("✅ Push notification sent")
}

// ============================================================
// EMAIL NOTIFICATIONS via SendGrid
// ============================================================

func (ns *NotificationService) sendEmail(toEmail string, toName string, subject string, htmlBody string) {
	if config.AppConfig.SendGridAPIKey == "" {
		logrus.Debugf("⚠️  SendGrid API key not set, skipping email to %s", toEmail)
		return
	}

	from := mail.NewEmail(config.AppConfig.AppName, config.AppConfig.SendGridFrom)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, "", htmlBody)

	client := sendgrid.NewSendClient(config.AppConfig.SendGridAPIKey)
	resp, err := client.Send(message)
	if err != nil {
		logrus.Warn("❌ Email send error: ", err)
		return
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		logrus.Debugf("✅ Email sent to %s", toEmail)
	} else {
		logrus.Warnf("⚠️  SendGrid returned status: %d", resp.StatusCode)
	}
}

// ============================================================
// NOTIFICATION EVENTS
// ============================================================

// NotifyExpenseAdded sends push + email to all split participants
func (ns *NotificationService) NotifyExpenseAdded(expense models.Expense, splits []models.ExpenseSplit, payer models.User, household models.Household) {
	for _, split := range splits {
		if split.UserID == expense.PaidBy {
			continue // Don't notify the payer
		}

		var user models.User
		if err := database.DB.First(&user, split.UserID).Error; err != nil {
			continue
		}

		title := fmt.Sprintf("%s added an expense", payer.Name)
		body := fmt.Sprintf("You owe %s %.2f for \"%s\" in %s", expense.Currency, split.OwedAmount, expense.Description, household.Name)

		ns.sendPush(user.FCMToken, title, body, map[string]string{
			"type":         "expense_added",
			"expense_id":   expense.ID.String(),
			"household_id": expense.HouseholdID.String(),
		})

		htmlBody := buildExpenseEmailHTML(payer.Name, user.Name, expense.Description, expense.Amount, split.OwedAmount, expense.Currency, household.Name)
		ns.sendEmail(user.Email, user.Name, fmt.Sprintf("%s added \"%s\" in %s", payer.Name, expense.Description, household.Name), htmlBody)
	}
}

// NotifySettlement sends push + email to the payee
func (ns *NotificationService) NotifySettlement(settlement models.Settlement, payer models.User, payee models.User, household models.Household) {
	title := fmt.Sprintf("%s paid you", payer.Name)
	body := fmt.Sprintf("%s paid you %.2f in %s", payer.Name, settlement.Amount, household.Name)

	ns.sendPush(payee.FCMToken, title, body, map[string]string{
		"type":         "settlement",
		"household_id": settlement.HouseholdID.String(),
	})

	htmlBody := buildSettlementEmailHTML(payer.Name, payee.Name, settlement.Amount, household.Name)
	ns.sendEmail(payee.Email, payee.Name, fmt.Sprintf("%s settled up with you in %s", payer.Name, household.Name), htmlBody)
}

// NotifyMemberAdded sends push + email to the newly added member
func (ns *NotificationService) NotifyMemberAdded(household models.Household, adder models.User, newMember models.User) {
	title := fmt.Sprintf("You were added to \"%s\"", household.Name)
	body := fmt.Sprintf("%s added you to the household \"%s\"", adder.Name, household.Name)

	ns.sendPush(newMember.FCMToken, title, body, map[string]string{
		"type":         "member_added",
		"household_id": household.ID.String(),
	})

	htmlBody := buildMemberAddedEmailHTML(adder.Name, newMember.Name, household.Name)
	ns.sendEmail(newMember.Email, newMember.Name, title, htmlBody)
}

// NotifyInvitation sends email to non-registered users
func (ns *NotificationService) NotifyInvitation(email string, inviterName string, householdName string) {
	subject := fmt.Sprintf("%s invited you to join \"%s\" on %s", inviterName, householdName, config.AppConfig.AppName)
	htmlBody := buildInvitationEmailHTML(inviterName, householdName)
	ns.sendEmail(email, "", subject, htmlBody)
}

// NotifyBalanceReminder nudges both parties of an outstanding balance.
func (ns *NotificationService) NotifyBalanceReminder(debtor models.User, creditor models.User, amount float64, household models.Household) {
	ns.sendPush(debtor.FCMToken,
		"Outstanding balance",
		fmt.Sprintf("You owe %s %.2f in %s", creditor.Name, amount, household.Name),
		map[string]string{"type": "balance_reminder", "household_id": household.ID.String()})

	ns.sendPush(creditor.FCMToken,
		"Outstanding balance",
		fmt.Sprintf("%s owes you %.2f in %s", debtor.Name, amount, household.Name),
		map[string]string{"type": "balance_reminder", "household_id": household.ID.String()})
}

// ============================================================
// EMAIL TEMPLATES
// ============================================================

func buildExpenseEmailHTML(payerName, userName, description string, totalAmount, owedAmount float64, currency, householdName string) string {
	tmpl := `
<!DOCTYPE html>
<html>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; background-color: #f5f5f5;">
	<div style="background: white; border-radius: 12px; padding: 32px; box-shadow: 0 2px 8px rgba(0,0,0,0.1);">
		<h2 style="color: #1DB954; margin-top: 0;">💰 New Expense Added</h2>
		<p>Hi <strong>{{.UserName}}</strong>,</p>
		<p><strong>{{.PayerName}}</strong> added a new expense in <strong>{{.HouseholdName}}</strong>:</p>
		<div style="background: #f8f9fa; border-radius: 8px; padding: 16px; margin: 16px 0;">
			<p style="margin: 4px 0; font-size: 18px;"><strong>{{.Description}}</strong></p>
			<p style="margin: 4px 0; color: #666;">Total: {{.Currency}} {{printf "%.2f" .TotalAmount}}</p>
			<p style="margin: 4px 0; color: #e53e3e; font-size: 18px;"><strong>Your share: {{.Currency}} {{printf "%.2f" .OwedAmount}}</strong></p>
		</div>
		<p style="color: #999; font-size: 12px; margin-top: 24px;">— {{.AppName}}</p>
	</div>
</body>
</html>`

	t, _ := template.New("expense").Parse(tmpl)
	var buf bytes.Buffer
	t.Execute(&buf, map[string]interface{}{
		"PayerName":     payerName,
		"UserName":      userName,
		"Description":   description,
		"TotalAmount":   totalAmount,
		"OwedAmount":    owedAmount,
		"Currency":      currency,
		"HouseholdName": householdName,
		"AppName":       config.AppConfig.AppName,
	})
	return buf.String()
}

func buildSettlementEmailHTML(payerName, payeeName string, amount float64, householdName string) string {
	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; background-color: #f5f5f5;">
	<div style="background: white; border-radius: 12px; padding: 32px; box-shadow: 0 2px 8px rgba(0,0,0,0.1);">
		<h2 style="color: #1DB954; margin-top: 0;">✅ Payment Recorded</h2>
		<p>Hi <strong>%s</strong>,</p>
		<p><strong>%s</strong> recorded a payment of <strong>%.2f</strong> to you in <strong>%s</strong>.</p>
		<p>Check the app to see your updated balances.</p>
		<p style="color: #999; font-size: 12px; margin-top: 24px;">— %s</p>
	</div>
</body>
</html>`, payeeName, payerName, amount, householdName, config.AppConfig.AppName)
}

func buildMemberAddedEmailHTML(adderName, memberName, householdName string) string {
	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; background-color: #f5f5f5;">
	<div style="background: white; border-radius: 12px; padding: 32px; box-shadow: 0 2px 8px rgba(0,0,0,0.1);">
		<h2 style="color: #1DB954; margin-top: 0;">👋 You've been added to a household!</h2>
		<p>Hi <strong>%s</strong>,</p>
		<p><strong>%s</strong> added you to the household <strong>"%s"</strong>.</p>
		<p>Open the app to start tracking shared expenses!</p>
		<p style="color: #999; font-size: 12px; margin-top: 24px;">— %s</p>
	</div>
</body>
</html>`, memberName, adderName, householdName, config.AppConfig.AppName)
}

func buildInvitationEmailHTML(inviterName, householdName string) string {
	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; background-color: #f5f5f5;">
	<div style="background: white; border-radius: 12px; padding: 32px; box-shadow: 0 2px 8px rgba(0,0,0,0.1);">
		<h2 style="color: #1DB954; margin-top: 0;">🎉 You're invited!</h2>
		<p><strong>%s</strong> invited you to join <strong>"%s"</strong> on %s.</p>
		<p>%s makes it easy to split expenses, plan events, and run a shared home.</p>
		<div style="margin: 24px 0;">
			<a href="%s" style="background: #1DB954; color: white; padding: 12px 32px; border-radius: 8px; text-decoration: none; font-weight: bold;">Join Now</a>
		</div>
		<p style="color: #999; font-size: 12px; margin-top: 24px;">— %s</p>
	</div>
</body>
</html>`, inviterName, householdName, config.AppConfig.AppName, config.AppConfig.AppName, config.AppConfig.AppURL, config.AppConfig.AppName)
}
