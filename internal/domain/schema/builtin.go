package schema

// builtinColumns describes the membership/insurance table served by default.
var builtinColumns = map[string]string{
	"PK":                        "Primary partition key",
	"SK":                        "Sort key",
	"accountChannelCode":        "Sign-up channel code",
	"accountLoginId":            "Account login ID",
	"accountLoginPassword":      "Account login password",
	"accountNewsSubscription":   "Newsletter subscription consent",
	"accountRegistrationSource": "Sign-up source",
	"accountRegistrationType":   "Sign-up method (email, social login)",
	"activatedAt":               "Account activation time",
	"agreeTerm":                 "Terms of service consent",
	"authProvider":              "External auth provider (e.g. Google, Facebook)",
	"companyCode":               "Company code",
	"companyDepartment":         "Company department",
	"companyEmployeeNumber":     "Employee number",
	"companyName":               "Company name",
	"companySK":                 "Company detail identifier (sort key)",
	"createdAt":                 "Creation time",
	"dataType":                  "Record data type",
	"email":                     "Email address",
	"engName":                   "Name in English",
	"engNation":                 "Nationality in English",
	"estimate":                  "Quoted amount",
	"estimateFile":              "Quote file reference",
	"finishAt":                  "Service end time",
	"gender":                    "Gender",
	"groupKey":                  "Group identifier key",
	"groupName":                 "Group name",
	"idNumber":                  "ID card or resident registration number",
	"insuranceCertificateUrl":   "Insurance certificate URL",
	"insuranceEndDate":          "Insurance end date",
	"insuranceEvacuationPlan":   "Evacuation plan included in the insurance",
	"insurancePlan":             "Insurance plan type",
	"insuranceStartDate":        "Insurance start date",
	"linkPaperGuide":            "Paper application guide link",
	"linkPaperJoin":             "Paper application submission link",
	"linkPaperJoinEng":          "Paper application submission link (English)",
	"managerEmail":              "Manager email",
	"managerName":               "Manager name",
	"managerTel":                "Manager phone number",
	"membershipCertificateUrl":  "Corporate membership certificate URL",
	"membershipCorporateType":   "Corporate membership type",
	"membershipEndDate":         "Corporate membership end date",
	"membershipPersonalType":    "Corporate membership personal type",
	"membershipStartDate":       "Corporate membership start date",
	"name":                      "Name",
	"nation":                    "Country",
	"paidAt":                    "Payment time",
	"paidPrice":                 "Paid amount",
	"period":                    "Usage period",
	"policyNumber":              "Insurance policy number",
	"price":                     "Base price",
	"productName":               "Product name",
	"productSk":                 "Product detail identifier (SK)",
	"receipts":                  "Receipt list or file references",
	"registrationCount":         "Registration count",
	"registrationNumber":        "Registration number",
	"residenceBusinessTripType": "Stay type (residence/business trip)",
	"residenceCityCode":         "Residence city code",
	"residenceCountryCode":      "Residence country code",
	"residenceCountryName":      "Residence country name",
	"residenceEndDate":          "Residence end date",
	"residenceStartDate":        "Residence start date",
	"residenceStayType":         "Residence form (short/long term)",
	"startAt":                   "Start time",
	"status":                    "Status (e.g. active, expired)",
	"tel":                       "Phone number",
	"timestamp":                 "Timestamp (Unix epoch)",
	"totalPrice":                "Total amount",
	"trainingInfo":              "Training information",
	"updatedAt":                 "Update time",
	"userBirthDate":             "User date of birth",
	"userEmail":                 "User email address",
	"userEmergencyContact":      "Emergency contact",
	"userEnglishName":           "User name in English",
	"userGender":                "User gender",
	"userName":                  "User legal name",
	"userNote":                  "User note",
	"userPhone":                 "User phone number",
	"userRegistrationNumber":    "User registration or ID number",
	"userRelation":              "Relation to the applicant (self, spouse, ...)",
	"userType":                  "User type (admin, regular, guest, ...)",
}

// Builtin returns the catalog compiled into the binary.
func Builtin() *Catalog {
	fields := make([]Field, 0, len(builtinColumns))
	for name, desc := range builtinColumns {
		fields = append(fields, Field{name: name, description: desc})
	}
	c, err := NewCatalog(fields)
	if err != nil {
		panic(err) // map keys are unique
	}
	return c
}
