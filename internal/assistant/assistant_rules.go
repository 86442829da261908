package assistant

import "strings"

// Kategori request yang dikenali generator.
const (
	TypeEmailTemplate     = "email_template"
	TypePolicy            = "policy"
	TypeFormulaSuggestion = "formula_suggestion"
)

const (
	salaryCreditTemplate = "Subject: Salary Credit Confirmation\n\n" +
		"Dear [Employee Name],\n\n" +
		"This is to inform you that your salary for the month has been " +
		"processed and credited to your registered bank account.\n" +
		"If you notice any discrepancy in the credited amount, please " +
		"reach out to HR/Payroll within 2 working days.\n"

	leaveApprovalTemplate = "Subject: Leave Request – Approval\n\n" +
		"Dear [Employee Name],\n\n" +
		"Your leave request has been reviewed and approved as per the " +
		"details shared in your application.\n" +
		"Kindly ensure proper handover of your ongoing tasks before " +
		"proceeding on leave.\n"

	leaveRejectionTemplate = "Subject: Leave Request – Regret\n\n" +
		"Dear [Employee Name],\n\n" +
		"This is with reference to your recent leave request.\n" +
		"We regret to inform you that the request cannot be approved " +
		"due to business/operational requirements during the requested period.\n" +
		"You may discuss with your manager and raise a fresh request " +
		"for alternate dates, if required.\n"

	lateComingEmailTemplate = "Subject: Advisory on Late Coming\n\n" +
		"Dear [Employee Name],\n\n" +
		"It has been observed that there are repeated instances of late " +
		"reporting to work.\n" +
		"You are requested to adhere strictly to the prescribed office " +
		"timings. Continued non‑compliance may lead to further action " +
		"as per company policy.\n"

	genericEmailTemplate = "Subject: HR Communication\n\n" +
		"Dear [Employee Name],\n\n" +
		"This is a system‑generated HR communication based on your request.\n"

	leavePolicyTemplate = "Leave Policy (CL, SL and LOP) – Draft\n\n" +
		"1. Casual Leave (CL): Granted for short‑term personal reasons with prior approval.\n" +
		"2. Sick Leave (SL): Applicable in case of medical illness; medical proof may be requested.\n" +
		"3. Loss of Pay (LOP): Applied when leave exceeds available balance or is unapproved.\n" +
		"4. All leave requests must be recorded in the HR system and approved by the reporting manager.\n"

	payrollPolicyTemplate = "Basic Payroll Policy – Draft\n\n" +
		"1. Salaries are processed monthly and credited to employees’ bank accounts.\n" +
		"2. Statutory deductions such as PF, ESI and Professional Tax are applied as per regulations.\n" +
		"3. Any adjustments for LOP, incentives or arrears are reflected in the same or subsequent month.\n"

	attendancePolicyTemplate = "Attendance and Late Coming Policy – Draft\n\n" +
		"1. Employees must follow the defined shift/office timings.\n" +
		"2. Late coming beyond the grace period may be adjusted against leave or treated as LOP.\n" +
		"3. Attendance must be recorded through the official system (biometric/portal).\n"

	wfhPolicyTemplate = "Work From Home (WFH) Policy – Draft\n\n" +
		"1. WFH is allowed only with prior manager approval except in emergencies.\n" +
		"2. Employees must be available during working hours on official communication channels.\n" +
		"3. Daily work updates and task status must be shared with the reporting manager.\n"

	genericPolicyTemplate = "Draft HR policy based on the given context.\n"

	pfFormulaTemplate = "PF Calculation Suggestion:\n" +
		"PF = Basic Salary × PF% / 100\n" +
		"Example: If Basic Salary = ₹30,000 and PF% = 12, PF = 30,000 × 12 / 100 = ₹3,600.\n"

	esiFormulaTemplate = "ESI Deduction Logic:\n" +
		"ESI = Gross Salary × ESI% / 100 (subject to eligibility and statutory wage limits).\n"

	lopFormulaTemplate = "LOP Salary Deduction Formula:\n" +
		"Per‑day salary = Gross Salary / Total Working Days.\n" +
		"LOP Amount = Per‑day salary × LOP Days.\n"

	netSalaryFormulaTemplate = "Gross to Net Salary Calculation:\n" +
		"Net Salary = Gross Salary – (PF + ESI + PT + other deductions).\n"

	genericFormulaTemplate = "Payroll formula suggestion based on the given context.\n"
)

type rule struct {
	keyword  string
	template string
}

// category adalah daftar aturan terurut: kecocokan substring pertama menang,
// sisanya jatuh ke fallback kategori.
type category struct {
	rules      []rule
	fallback   string
	extraLabel string
	closing    string
}

var categories = map[string]category{
	TypeEmailTemplate: {
		rules: []rule{
			{keyword: "salary credit", template: salaryCreditTemplate},
			{keyword: "leave approval", template: leaveApprovalTemplate},
			{keyword: "leave rejection", template: leaveRejectionTemplate},
			{keyword: "warning", template: lateComingEmailTemplate},
			{keyword: "late coming", template: lateComingEmailTemplate},
		},
		fallback:   genericEmailTemplate,
		extraLabel: "Additional details",
		closing:    "\nRegards,\nHR Team",
	},
	TypePolicy: {
		rules: []rule{
			{keyword: "leave policy", template: leavePolicyTemplate},
			{keyword: "cl", template: leavePolicyTemplate},
			{keyword: "sl", template: leavePolicyTemplate},
			{keyword: "payroll policy", template: payrollPolicyTemplate},
			{keyword: "attendance", template: attendancePolicyTemplate},
			{keyword: "late coming", template: attendancePolicyTemplate},
			{keyword: "work from home", template: wfhPolicyTemplate},
		},
		fallback:   genericPolicyTemplate,
		extraLabel: "Context",
	},
	TypeFormulaSuggestion: {
		rules: []rule{
			{keyword: "pf", template: pfFormulaTemplate},
			{keyword: "esi", template: esiFormulaTemplate},
			{keyword: "lop", template: lopFormulaTemplate},
			{keyword: "gross to net", template: netSalaryFormulaTemplate},
			{keyword: "net salary", template: netSalaryFormulaTemplate},
		},
		fallback:   genericFormulaTemplate,
		extraLabel: "Data/Notes",
	},
}

// Generate memilih template berdasarkan substring match yang case-insensitive
// terhadap context. Request type yang tidak dikenali mengembalikan context
// apa adanya.
func Generate(requestType, context, additionalInfo string) string {
	normalized := strings.ToLower(strings.TrimSpace(context))
	extra := strings.TrimSpace(additionalInfo)

	cat, ok := categories[requestType]
	if !ok {
		body := context
		if extra != "" {
			body += "\n\nDetails: " + extra
		}
		return body
	}

	body := cat.fallback
	for _, r := range cat.rules {
		if strings.Contains(normalized, r.keyword) {
			body = r.template
			break
		}
	}

	if extra != "" {
		body += "\n" + cat.extraLabel + ": " + extra + "\n"
	}
	body += cat.closing

	return body
}
