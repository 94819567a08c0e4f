package mailer

import (
	"bytes"
	"html/template"
)

const layoutHead = `<!DOCTYPE html>
<html>
<head>
<style>
  body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
  .container { max-width: 600px; margin: 0 auto; padding: 20px; }
  .header { background: #1b5e20; color: white; padding: 20px; text-align: center; border-radius: 8px 8px 0 0; }
  .content { background: #f9f9f9; padding: 30px; border-radius: 0 0 8px 8px; }
  .button { display: inline-block; padding: 12px 24px; background: #1b5e20; color: white; text-decoration: none; border-radius: 5px; margin: 20px 0; }
  .box { background: #fff; padding: 15px; border-left: 4px solid #1b5e20; margin: 20px 0; }
  .footer { text-align: center; margin-top: 20px; color: #666; font-size: 12px; }
</style>
</head>
<body>
<div class="container">`

const layoutFoot = `<div class="footer">
  <p>This is an automated email. Please do not reply.</p>
</div>
</div>
</div>
</body>
</html>`

var registrationTmpl = template.Must(template.New("registration").Parse(layoutHead + `
<div class="header"><h1>Welcome to HOD Management System</h1></div>
<div class="content">
  <h2>Registration Successful!</h2>
  <p>Dear {{.Name}},</p>
  <p>Your account has been registered in the HOD Management System.</p>
  <div class="box">
    <h3>Your Login Credentials:</h3>
    <p><strong>Username:</strong> {{.Username}}</p>
    <p><strong>Temporary Password:</strong> {{.Password}}</p>
  </div>
  <p><strong>Important:</strong> please change your password after your first login.</p>
  <a href="{{.FrontendURL}}/change-password" class="button">Change Password</a>
` + layoutFoot))

var passwordChangedTmpl = template.Must(template.New("password_changed").Parse(layoutHead + `
<div class="header"><h1>Password Changed Successfully</h1></div>
<div class="content">
  <h2>Hello {{.Name}},</h2>
  <div class="box"><p><strong>Your password has been changed.</strong></p></div>
  <p>If you did not make this change, contact the system administrator immediately.</p>
` + layoutFoot))

type registrationData struct {
	Name        string
	Username    string
	Password    string
	FrontendURL string
}

type passwordChangedData struct {
	Name string
}

func render(t *template.Template, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
