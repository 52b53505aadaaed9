package knowledge

// seedDocuments returns the built-in policy corpus written to disk on
// first run. Content is maintained by the compliance team; ids are stable
// and referenced from dashboards, do not renumber.
func seedDocuments() []Document {
	return []Document{
		{
			ID:       "policy_emi_calculation",
			Category: "EMI Calculation",
			Title:    "EMI Calculation Formula and Example",
			Content: `EMI (Equated Monthly Installment) Formula:
EMI = [P x R x (1 + R)^N] / [(1 + R)^N - 1]

Where:
- P = Principal loan amount (in rupees)
- R = Monthly interest rate (annual rate / 12 / 100)
- N = Total number of months (loan tenure in years x 12)

Example Calculation:
Principal (P) = INR 5,00,000
Annual Rate = 10% p.a.
Tenure = 5 years (60 months)

Step 1: Monthly rate R = 10 / 12 / 100 = 0.008333
Step 2: EMI = [5,00,000 x 0.008333 x (1.008333)^60] / [(1.008333)^60 - 1]
EMI = INR 10,610 per month

Total Payment = 10,610 x 60 = INR 6,36,600
Total Interest = 6,36,600 - 5,00,000 = INR 1,36,600

Important Notes:
- EMI remains constant throughout the loan period
- First EMI installment due after 30 days from disbursement
- EMI includes both principal and interest
- Prepayment reduces both total interest and remaining tenure`,
		},
		{
			ID:       "policy_interest_breakup",
			Category: "Interest Calculations",
			Title:    "Interest Breakdown in EMI",
			Content: `Understanding Interest Component in Each EMI:

Early EMIs (First 6 months):
- Higher interest component, lower principal component
- Example: In first EMI of INR 10,000, interest might be INR 4,167, principal only INR 5,833

Middle EMIs (6-36 months):
- Gradual decrease in interest component
- Gradual increase in principal component

Final EMIs (Last 12 months):
- Lower interest component, higher principal component
- Majority goes toward principal repayment

Example Breakdown - INR 5L at 10% for 5 years:
Month 1: Interest = 4,166.67 | Principal = 6,443.33 | Balance = 4,93,556.67
Month 12: Interest = 3,953.68 | Principal = 6,656.32 | Balance = 4,20,598.68
Month 30: Interest = 2,827.45 | Principal = 7,782.55 | Balance = 2,17,842.19
Month 59: Interest = 87.58 | Principal = 10,522.42 | Balance = 10,087.58
Month 60: Interest = 84.06 | Principal = 10,525.94 | Balance = 0

Key Insight:
Early prepayment saves maximum interest. Paying extra in early months is highly beneficial.`,
		},
		{
			ID:       "policy_interest_rates",
			Category: "Interest Rates",
			Title:    "Current Interest Rate Slabs",
			Content: `Interest Rate Structure as of Feb 2026:

Personal Loan Rates:
EXCELLENT Credit (750+): 8.5% - 9.0% p.a.
GOOD Credit (700-749): 9.5% - 10.5% p.a.
FAIR Credit (650-699): 11.0% - 12.5% p.a.
AVERAGE Credit (<650): 13.0% - 15.0% p.a. (or not eligible)

Special Discounts:
- Salary Account Holder: 0.5% discount
- Existing Customer: 0.75% discount
- Investment Product Customer: 0.25% discount
- Online Application: 0.25% discount
- Referral Program: 0.25% discount

Home Loan Rates:
LTV 60% or less: 6.5% - 7.5% p.a.
LTV 60-80%: 7.0% - 8.0% p.a.
LTV above 80%: 8.0% - 9.0% p.a.

Auto Loan Rates:
New Vehicle: 7.0% - 9.0% p.a.
Used Vehicle (0-5 years): 8.0% - 10.0% p.a.
Used Vehicle (5+ years): 10.0% - 12.0% p.a.

Important Disclaimers:
- Rates subject to credit profile assessment
- Final rate decided at approval stage
- Floating rates may change with RBI policy
- Fixed rates locked for entire tenure`,
		},
		{
			ID:       "policy_penalties",
			Category: "Penalties and Charges",
			Title:    "Late Payment Penalties",
			Content: `Late Payment Fee Structure:

1-5 Days Late:
- Penalty: 1.5% of EMI amount
- Credit Score Impact: None yet
- Status: OVERDUE (not Default)

6-30 Days Late:
- Additional Penalty: 2% of EMI amount (cumulative 3.5%)
- Credit Score Impact: Begins (100-150 point drop)
- Status: OVERDUE - High Risk

31-60 Days Late:
- Penalty: 2% per month (compounded)
- Marked as "Suit Filed" on credit report
- Credit Score Impact: 150-200 point drop
- Status: DEFAULT

61+ Days Late:
- Legal recovery proceedings initiated
- Default status reported to CIBIL
- Severe credit score damage (200+ points)
- Collections agency involvement possible

Important:
- Penalties are separate from interest
- Auto-pay prevents all penalties
- Contact support within 5 days for relief options
- After 90 days: Loan may be marked as NPA (Non-Performing Asset)`,
		},
		{
			ID:       "policy_prepayment",
			Category: "Prepayment Policy",
			Title:    "Loan Prepayment and Early Closure",
			Content: `Prepayment Policy Overview:

Prepayment Within 6 Months:
- Prepayment Charge: 2% of prepaid amount
- Remaining interest: Prorated (calculated daily)

Prepayment After 6 Months:
- Prepayment Charge: ZERO (Waived)
- All prepayment amount goes to principal
- Interest saving is maximum

Calculation Example (INR 5L at 10% for 5 years):
Original EMI: INR 10,610/month, total interest INR 1,36,600.
Prepay entire amount after 1 year: interest saved approx INR 1,00,000,
2% charge applies if within the first 6 months.
Prepay after 2 years: no charge, interest saved approx INR 70,000.

Partial Prepayment:
- Minimum Amount: INR 1,000
- Can be done anytime; EMI continues till closure
- Tenure can shorten automatically (if requested)

Methods to Prepay:
1. Online Portal: Dashboard -> My Loan -> Prepayment
2. Mobile App: Loan Details -> Additional Payment
3. Bank Transfer: With clear reference
4. Branch Visit: Direct payment option`,
		},
		{
			ID:       "policy_credit_score_impact",
			Category: "Credit Score Impact",
			Title:    "How Loans Affect Credit Score",
			Content: `Credit Score Impact Breakdown (CIBIL Score 300-900):

Positive Impacts:
- On-time payments: +5-10 points per month
- Long repayment history: +20-50 points
- Timely full repayment: +100+ points
- Low credit utilization: +10-20 points

Negative Impacts:
- Late payment 1-30 days: -50 to -100 points
- Late payment 31-60 days: -100 to -150 points
- Default (61+ days): -150 to -200 points
- Multiple hard inquiries: -5 to -10 per inquiry

Recovery Timeline:
- 3-6 months of on-time payments: gradual recovery begins
- 12+ months: significant recovery with perfect payments
- 24+ months: default may drop off (varies by bureau)

Score Restoration Strategy:
1. Never miss payments (most important)
2. Keep credit utilization low
3. Avoid multiple simultaneous loan applications
4. Keep old accounts active
5. Check report for errors and dispute inaccuracies

Timeline to Good Score:
From Default to Good: 18-24 months. Perfect payments recover 20-30 points/month.`,
		},
		{
			ID:       "policy_compliance_regulations",
			Category: "Regulatory Compliance",
			Title:    "Regulatory Framework and Compliance",
			Content: `Key Compliance Requirements:

RBI Guidelines:
- Fair Lending Practices: No discrimination in approval
- Transparency: All terms clearly disclosed
- Consumer Protection: Grievance redressal mandatory
- Data Security: Encryption and privacy guaranteed

Consumer Protection Act, 2019:
- Right to Fair Pricing, Clear Information, Privacy
- Right to Grievance Redressal, Protection from Harassment

Collection Practices (Allowed):
- SMS reminders and email notifications
- Calls during 7 AM - 7 PM, every 2-3 days
- Clear explanation of dues

Collection Practices (Prohibited):
- Abusive language or threats
- Calls before 7 AM or after 7 PM
- Calls to family members or workplace (except first contact)
- Public disclosure of debt

Complaint Escalation:
Level 1: Customer Support (24 hours)
Level 2: Grievance Officer (7 days)
Level 3: Ombudsman (if unresolved)
Level 4: RBI/Courts (if necessary)

Your Rights:
- Know all charges upfront
- Cancel within 30 days (no penalty)
- Prepay anytime (penalty per policy)
- Change due date (twice yearly)`,
		},
		{
			ID:       "policy_eligibility_factors",
			Category: "Eligibility Criteria",
			Title:    "Loan Eligibility Factors and Assessment",
			Content: `Eligibility Assessment Criteria:

Age Requirements:
- Minimum: 21 years
- Maximum: 60 years (at loan end)

Income Requirements (Personal Loan):
- Minimum: INR 2.5 lakh per annum
- Preferred: INR 5+ lakh per annum
- Self-employed: Additional documentation

Employment Status:
- Salaried: 2+ years in current job
- Self-employed: 3+ years business, ITR filing required
- Freelancer: 2+ years documented income
- Unemployed/Recently retired: Not eligible

Credit History:
- Credit Score 650+: Eligible
- 700+: Better rates; 750+: Best rates
- No score: Alternative assessment

Debt Analysis:
- Debt-to-Income Ratio: Max 50%
- Example: INR 1L monthly income = max INR 50K EMI

Documentation Requirements:
Identity Proof: Aadhaar, Passport, Voter ID, Driving License
Address Proof: Utility bill, Rental agreement, Property tax
Income Proof: Salary slips (3 months), ITR (1 year), Form 16
Bank Statement: Last 6 months showing regular income

Additional Factors:
- Co-applicant income can boost eligibility
- Guarantor can improve approval odds
- Online pre-approval available, valid 30 days`,
		},
		{
			ID:       "policy_tenure_options",
			Category: "Loan Tenure",
			Title:    "Loan Duration Options and Selection",
			Content: `Available Loan Tenure Options:

Personal Loans: 12, 24, 36 (most popular), 48, 60 months;
72 months for large amounts.
Home Loans: 5-30 years, most common 15-20 years.
Auto Loans: 24-60 months; used car 36-48 months max.

Tenure Impact on EMI (INR 5L at 10% p.a.):
- 1 year: EMI = INR 42,915
- 2 years: EMI = INR 21,875
- 3 years: EMI = INR 15,838
- 5 years: EMI = INR 10,610 | Total Interest = INR 1,36,600

Key Insight:
- Longer tenure = lower EMI but higher total interest
- Shorter tenure = higher EMI but lower total interest

Choosing Right Tenure:
1. Monthly cash flow: can you afford the EMI?
2. Interest savings: shorter tenure saves interest
3. Income stability: longer if income is uncertain
4. Prepayment plans: longer tenure keeps options open

Tenure Change Options:
- Extend tenure to reduce EMI (after 2 years, special request)
- Reduce tenure anytime via prepayment

Recommendation: keep EMI at 30-40% of monthly income;
3-5 years is optimal for personal loans.`,
		},
	}
}
