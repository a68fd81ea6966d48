package seed

type seedElement struct {
	Name        string
	Description string
	Required    bool
	Multiple    bool
}

type seedType struct {
	Name        string
	Description string
	Elements    []seedElement
}

// The reference data the companion viewer expects. Elements are scoped
// to their document type: "Borrower Name" under Credit Agreement and
// under Draw Notice are separate rows, matching the fact that data
// element names are not unique.
var seedTypes = []seedType{
	{
		Name:        "Credit Agreement",
		Description: "A legal agreement outlining the terms and conditions for extending credit.",
		Elements: []seedElement{
			{Name: "Borrower Name", Description: "The name of the person or entity borrowing the money.", Required: true},
			{Name: "Lender Name", Description: "The name of the person or entity lending the money.", Required: true},
			{Name: "Loan Amount", Description: "The total amount of money being borrowed.", Required: true},
			{Name: "Interest Rate", Description: "The percentage of the loan amount charged as interest.", Required: true},
			{Name: "Loan Term", Description: "The duration over which the loan is to be repaid.", Required: true},
			{Name: "Repayment Schedule", Description: "The schedule outlining the repayment of the loan.", Required: true},
			{Name: "Collateral Description", Description: "A description of the assets pledged as security for the loan.", Required: true},
			{Name: "Loan Purpose", Description: "The purpose for which the loan is being taken.", Required: true},
			{Name: "Financial Covenants", Description: "The financial conditions that the borrower must adhere to.", Required: true},
			{Name: "Guarantor Information", Description: "Information about the person or entity guaranteeing the loan.", Required: true},
			{Name: "Origination Fees", Description: "The fees charged for processing the loan.", Required: true},
			{Name: "Prepayment Penalties", Description: "The penalties for paying off the loan early.", Required: true},
			{Name: "Default Conditions", Description: "The conditions under which the borrower is considered to be in default.", Required: true},
			{Name: "Amendment Clauses", Description: "The clauses outlining how the loan agreement can be amended.", Required: true},
			{Name: "Governing Law", Description: "The legal jurisdiction governing the loan agreement.", Required: true},
			{Name: "Disbursement Schedule", Description: "The schedule outlining the disbursement of the loan funds.", Required: true},
			{Name: "Signatory Parties", Description: "The parties who have signed the loan agreement.", Required: true},
			{Name: "Effective Date", Description: "The date on which the loan agreement becomes effective.", Required: true},
			{Name: "Maturity Date", Description: "The date on which the loan is to be fully repaid.", Required: true},
			{Name: "Payment Instructions", Description: "The instructions for making loan payments.", Required: true},
		},
	},
	{
		Name:        "Draw Notice",
		Description: "A notice sent by a lender to a borrower to request a drawdown of funds.",
		Elements: []seedElement{
			{Name: "Borrower Name", Description: "The name of the person or entity borrowing the money.", Required: true},
			{Name: "Lender Name", Description: "The name of the person or entity lending the money.", Required: true},
			{Name: "Loan Amount", Description: "The total amount of money being borrowed.", Required: true},
			{Name: "Drawdown Amount", Description: "The amount being requested as a drawdown.", Required: true},
			{Name: "Drawdown Date", Description: "The date on which the drawdown is requested.", Required: true},
			{Name: "Drawdown Purpose", Description: "The purpose for which the drawdown is being requested.", Required: true},
			{Name: "Drawdown Instructions", Description: "The instructions for processing the drawdown.", Required: true},
			{Name: "Drawdown Authorization", Description: "The authorization for the drawdown request.", Required: true},
		},
	},
}
