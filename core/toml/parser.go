package toml

import (
	goerrors "errors"
	"fmt"

	bstoml "github.com/BurntSushi/toml"

	stellartoml "github.com/marwen-abid/stellartoml-go"
	"github.com/marwen-abid/stellartoml-go/errors"
)

var (
	currencyStatuses = enumValues(stellartoml.CurrencyStatuses)
	anchorAssetTypes = enumValues(stellartoml.AnchorAssetTypes)
)

// Parse converts stellar.toml text into a typed document.
//
// Conversion is all-or-nothing: the first field that fails validation fails
// the whole call with an error naming the field path. Unrecognized keys are
// ignored so that newer SEP-1 revisions still parse.
func Parse(content string) (*stellartoml.StellarToml, error) {
	var tree map[string]any
	if _, err := bstoml.Decode(content, &tree); err != nil {
		return nil, malformed(err)
	}
	return decodeDocument(newReader("", tree))
}

// ParseBytes is Parse for a raw response body.
func ParseBytes(content []byte) (*stellartoml.StellarToml, error) {
	return Parse(string(content))
}

func malformed(err error) error {
	e := errors.New(errors.TOML_MALFORMED, "stellar.toml is not valid TOML", err)
	var pe bstoml.ParseError
	if goerrors.As(err, &pe) {
		e.With("line", pe.Position.Line)
		if pe.LastKey != "" {
			e.With("key", pe.LastKey)
		}
	}
	return e
}

func decodeDocument(r *reader) (*stellartoml.StellarToml, error) {
	doc := &stellartoml.StellarToml{
		Version:              r.str("VERSION"),
		NetworkPassphrase:    r.str("NETWORK_PASSPHRASE"),
		FederationServer:     r.uri("FEDERATION_SERVER"),
		AuthServer:           r.uri("AUTH_SERVER"),
		TransferServer:       r.uri("TRANSFER_SERVER"),
		TransferServerSep24:  r.uri("TRANSFER_SERVER_SEP0024"),
		KYCServer:            r.uri("KYC_SERVER"),
		WebAuthEndpoint:      r.uri("WEB_AUTH_ENDPOINT"),
		SigningKey:           r.publicKey("SIGNING_KEY"),
		HorizonURL:           r.str("HORIZON_URL"),
		Accounts:             r.publicKeys("ACCOUNTS"),
		URIRequestSigningKey: r.publicKey("URI_REQUEST_SIGNING_KEY"),
		Desc:                 r.str("DESC"),
	}

	if sub := r.table("DOCUMENTATION"); sub != nil {
		d, err := decodeDocumentation(sub)
		if err != nil {
			return nil, err
		}
		doc.Documentation = &d
	}

	for _, sub := range r.tables(true, "PRINCIPALS", "POINT_OF_CONTACT") {
		p, err := decodePointOfContact(sub)
		if err != nil {
			return nil, err
		}
		doc.Principals = append(doc.Principals, p)
	}

	for _, sub := range r.tables(false, "CURRENCIES") {
		c, err := decodeCurrency(sub)
		if err != nil {
			return nil, err
		}
		doc.Currencies = append(doc.Currencies, c)
	}

	for _, sub := range r.tables(false, "VALIDATORS") {
		v, err := decodeValidator(sub)
		if err != nil {
			return nil, err
		}
		doc.Validators = append(doc.Validators, v)
	}

	if r.err != nil {
		return nil, r.err
	}
	return doc, nil
}

func decodeDocumentation(r *reader) (stellartoml.Documentation, error) {
	d := stellartoml.Documentation{
		OrgName:                       r.str("ORG_NAME"),
		OrgDBA:                        r.str("ORG_DBA"),
		OrgURL:                        r.str("ORG_URL"),
		OrgLogo:                       r.str("ORG_LOGO"),
		OrgDescription:                r.str("ORG_DESCRIPTION"),
		OrgPhysicalAddress:            r.str("ORG_PHYSICAL_ADDRESS"),
		OrgPhysicalAddressAttestation: r.str("ORG_PHYSICAL_ADDRESS_ATTESTATION"),
		OrgPhoneNumber:                r.str("ORG_PHONE_NUMBER"),
		// Early SEP-1 revisions misspelled this key.
		OrgPhoneNumberAttestation: r.str("ORG_PHONE_NUMBER_ATTESTATION", "ORG_PHONE_NUMBER_ATTESTIATION"),
		OrgKeybase:                r.str("ORG_KEYBASE"),
		OrgTwitter:                r.str("ORG_TWITTER"),
		OrgGithub:                 r.str("ORG_GITHUB"),
		OrgOfficialEmail:          r.str("ORG_OFFICIAL_EMAIL"),
		OrgSupportEmail:           r.str("ORG_SUPPORT_EMAIL"),
		OrgLicensingAuthority:     r.str("ORG_LICENSING_AUTHORITY"),
		OrgLicenseType:            r.str("ORG_LICENSE_TYPE"),
		OrgLicenseNumber:          r.str("ORG_LICENSE_NUMBER"),
	}
	return d, r.err
}

func decodePointOfContact(r *reader) (stellartoml.PointOfContact, error) {
	p := stellartoml.PointOfContact{
		Name:                  r.str("name"),
		Email:                 r.str("email"),
		Keybase:               r.str("keybase"),
		Telegram:              r.str("telegram"),
		Twitter:               r.str("twitter"),
		Github:                r.str("github"),
		IDPhotoHash:           r.str("id_photo_hash"),
		VerificationPhotoHash: r.str("verification_photo_hash"),
	}
	return p, r.err
}

func decodeCurrency(r *reader) (stellartoml.Currency, error) {
	c := stellartoml.Currency{
		Code:                        r.str("code"),
		CodeTemplate:                r.str("code_template"),
		Status:                      stellartoml.CurrencyStatus(r.enum("status", currencyStatuses)),
		Name:                        r.str("name"),
		Desc:                        r.str("desc"),
		Conditions:                  r.str("conditions"),
		Image:                       r.uri("image"),
		FixedNumber:                 r.integer("fixed_number"),
		MaxNumber:                   r.integer("max_number"),
		IsUnlimited:                 r.boolean("is_unlimited"),
		IsAssetAnchored:             r.boolean("is_asset_anchored"),
		AnchorAssetType:             stellartoml.AnchorAssetType(r.enum("anchor_asset_type", anchorAssetTypes)),
		AnchorAsset:                 r.str("anchor_asset"),
		RedemptionInstructions:      r.str("redemption_instructions"),
		CollateralAddresses:         r.strs("collateral_addresses"),
		CollateralAddressMessages:   r.strs("collateral_address_messages"),
		CollateralAddressSignatures: r.strs("collateral_address_signatures"),
		Regulated:                   r.boolean("regulated"),
		ApprovalServer:              r.uri("approval_server"),
		ApprovalCriteria:            r.str("approval_criteria"),
	}

	r.check("code", c.Code, assetCodeRE, "asset code of 1-12 alphanumeric characters")
	r.check("code_template", c.CodeTemplate, codeTemplateRE, "code template of 1-12 alphanumeric or '?' characters")
	if c.Code == "" && c.CodeTemplate == "" {
		r.missing("code", "asset code")
	}

	if issuer := r.publicKey("issuer"); issuer != nil {
		c.Issuer = *issuer
	} else {
		r.missing("issuer", "public key")
	}

	if n := r.integer("display_decimals"); n != nil {
		if *n < 0 || *n > maxDisplayDecimals {
			r.fail(errors.NewFieldError(
				errors.INVALID_FIELD,
				r.field(r.key("display_decimals")),
				fmt.Sprintf("expected integer in [0, %d], got %d", maxDisplayDecimals, *n),
				nil,
			).With("expected", "integer"))
		} else {
			d := int(*n)
			c.DisplayDecimals = &d
		}
	}

	return c, r.err
}

func decodeValidator(r *reader) (stellartoml.Validator, error) {
	v := stellartoml.Validator{
		Alias:       r.str("ALIAS"),
		DisplayName: r.str("DISPLAY_NAME"),
		PublicKey:   r.publicKey("PUBLIC_KEY"),
		Host:        r.str("HOST"),
		History:     r.uri("HISTORY"),
	}
	if v.Alias == "" {
		r.missing("ALIAS", "string")
	}
	return v, r.err
}

func enumValues[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
