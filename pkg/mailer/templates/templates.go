package templates

import (
	"fmt"
	"html/template"
	"strings"
)

// IAM notification emails. Bodies are deliberately small; the frontend
// owns all real presentation, these are plain activation/reset links.

const (
	SubjectActivation       = "Lunch Hub - アカウント有効化"
	SubjectInvitation       = "Lunch Hub - 招待"
	SubjectInvitationResend = "Lunch Hub - 招待（再送）"
	SubjectPasswordReset    = "Lunch Hub - パスワードリセット"
)

var linkBody = template.Must(template.New("link").Parse(
	`<p>{{.Lead}}</p><p><a href="{{.URL}}">{{.URL}}</a></p>`,
))

func render(lead, url string) (string, error) {
	var sb strings.Builder
	err := linkBody.Execute(&sb, struct {
		Lead string
		URL  string
	}{Lead: lead, URL: url})
	if err != nil {
		return "", fmt.Errorf("render email body: %w", err)
	}
	return sb.String(), nil
}

// ActivationHTML is the self-signup activation email body.
func ActivationHTML(activationURL string) (string, error) {
	return render("以下のリンクからアカウントを有効化してください。", activationURL)
}

// InvitationHTML is the admin-invitation email body, also used on resend.
func InvitationHTML(activationURL string) (string, error) {
	return render("Lunch Hubへ招待されました。以下のリンクからアカウントを有効化してください。", activationURL)
}

// PasswordResetHTML is the password-reset email body.
func PasswordResetHTML(resetURL string) (string, error) {
	return render("パスワードリセットが要求されました。以下のリンクからパスワードをリセットしてください。", resetURL)
}
