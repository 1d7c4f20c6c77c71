package policies

const privacyInstructions = `You are drafting a Privacy Policy for the business described below.

Cover at minimum:
- What personal data is collected and how (forms, cookies, analytics, third parties)
- The purposes and legal bases for processing
- Retention periods and how data is secured
- Sharing with processors and international transfers
- User rights (access, rectification, erasure, objection, portability) and how to exercise them
- Children's privacy
- How changes to the policy are communicated
- Contact details for privacy questions

Reflect the data protection law of the stated country where it is known (e.g. GDPR in the EU, CCPA in California).`

const termsInstructions = `You are drafting Terms and Conditions governing use of the business's service.

Cover at minimum:
- Acceptance of terms and eligibility
- Accounts and user responsibilities
- Acceptable use and prohibited conduct
- Intellectual property ownership and licences granted to users
- Payments, subscriptions and cancellation where applicable
- Disclaimers of warranty and limitation of liability
- Termination
- Governing law and dispute resolution for the stated country
- Changes to the terms and contact information`

const cookieConsentInstructions = `You are writing the text of a cookie consent banner.

Produce a short banner message (two or three sentences) explaining that the site uses cookies and why, followed by button labels for Accept all, Reject non-essential and Manage preferences, and a one-line link text pointing to the Cookies Policy. Keep it concise and compliant with consent requirements in the stated country.`

const cookiePolicyInstructions = `You are drafting a Cookies Policy.

Cover at minimum:
- What cookies and similar technologies are
- Categories used (strictly necessary, preferences, analytics, marketing) with typical examples
- First-party and third-party cookies
- How consent is collected and withdrawn
- How to manage cookies in common browsers
- Updates to the policy and contact information`

const disclaimerInstructions = `You are drafting a general Disclaimer.

Cover at minimum:
- Information is provided for general purposes without warranty
- No professional advice relationship
- External links and third-party content
- Errors and omissions
- Limitation of liability to the extent permitted by the law of the stated country
- Contact information`

const eulaInstructions = `You are drafting an End-User License Agreement for the business's software.

Cover at minimum:
- Grant of a limited, non-exclusive, non-transferable licence
- Restrictions (reverse engineering, redistribution, sublicensing)
- Ownership and intellectual property
- Updates and third-party components
- Termination of the licence
- Warranty disclaimer and limitation of liability
- Governing law for the stated country and contact information`

const returnRefundInstructions = `You are drafting a Return and Refund Policy.

Cover at minimum:
- Eligibility and time window for returns
- Condition requirements and non-returnable items
- How to start a return and who pays return shipping
- Refund method and processing time
- Exchanges, damaged or defective items
- Consumer rights under the law of the stated country
- Contact information`

var instructions = map[Kind]string{
	PrivacyPolicy:      privacyInstructions,
	TermsConditions:    termsInstructions,
	CookieConsent:      cookieConsentInstructions,
	CookiePolicy:       cookiePolicyInstructions,
	Disclaimer:         disclaimerInstructions,
	EULA:               eulaInstructions,
	ReturnRefundPolicy: returnRefundInstructions,
}

// Instructions returns the drafting instructions for a document kind.
// Returns ErrUnknownKind if the kind is not recognized.
func Instructions(k Kind) (string, error) {
	text, ok := instructions[k]
	if !ok {
		return "", ErrUnknownKind
	}
	return text, nil
}
