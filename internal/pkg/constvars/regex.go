package constvars

const (
	RegexContainAtLeastOneSpecialChar = `.*[!@#$%^&*(),.?":{}|<>].*`
	RegexContainAtLeastOneUppercase   = `.*[A-Z].*`
	RegexDateYYYYMMDD                 = `^\d{4}-\d{2}-\d{2}$`
	RegexTimeHHMM                     = `^\d{2}:\d{2}$`
	RegexTimeHHMMSS                   = `^\d{2}:\d{2}:\d{2}$`
	RegexPhoneNumberGeneral           = `^\+?[1-9]\d{7,14}$`
)
