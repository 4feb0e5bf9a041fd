package email

import (
	"bytes"
	"html/template"
)

var verificationTmpl = template.Must(template.New("verification").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 560px; margin: 0 auto;">
  <h2>Подтверждение email</h2>
  <p>Здравствуйте, {{.Name}}!</p>
  <p>Ваш код подтверждения:</p>
  <p style="font-size: 28px; font-weight: bold; letter-spacing: 6px;">{{.Code}}</p>
  <p>Код действует 10 минут. Если вы не регистрировались, просто проигнорируйте это письмо.</p>
</div>
`))

var passwordResetTmpl = template.Must(template.New("password_reset").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 560px; margin: 0 auto;">
  <h2>Сброс пароля</h2>
  <p>Здравствуйте, {{.Name}}!</p>
  <p>Мы получили запрос на сброс пароля. Перейдите по ссылке, чтобы задать новый:</p>
  <p><a href="{{.ResetURL}}">{{.ResetURL}}</a></p>
  <p>Ссылка действует 10 минут. Если вы не запрашивали сброс, проигнорируйте это письмо - пароль останется прежним.</p>
</div>
`))

var passwordChangedTmpl = template.Must(template.New("password_changed").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 560px; margin: 0 auto;">
  <h2>Пароль изменен</h2>
  <p>Здравствуйте, {{.Name}}!</p>
  <p>Пароль вашего аккаунта был изменен. Если это были не вы, немедленно свяжитесь с поддержкой.</p>
</div>
`))

func renderVerification(name, code string) (string, error) {
	var buf bytes.Buffer
	err := verificationTmpl.Execute(&buf, struct {
		Name string
		Code string
	}{Name: name, Code: code})
	return buf.String(), err
}

func renderPasswordReset(name, resetURL string) (string, error) {
	var buf bytes.Buffer
	err := passwordResetTmpl.Execute(&buf, struct {
		Name     string
		ResetURL string
	}{Name: name, ResetURL: resetURL})
	return buf.String(), err
}

func renderPasswordChanged(name string) (string, error) {
	var buf bytes.Buffer
	err := passwordChangedTmpl.Execute(&buf, struct{ Name string }{Name: name})
	return buf.String(), err
}
