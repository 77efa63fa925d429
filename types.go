package stellartoml

// StellarToml is the parsed contents of a stellar.toml file.
// Absent string fields are empty; absent URIs and keys are nil.
type StellarToml struct {
	// VERSION is the SEP-1 revision the file adheres to.
	Version string `toml:"VERSION,omitempty" json:"version,omitempty" yaml:"version,omitempty"`

	// NETWORK_PASSPHRASE identifies the Stellar network (testnet/mainnet).
	NetworkPassphrase string `toml:"NETWORK_PASSPHRASE,omitempty" json:"network_passphrase,omitempty" yaml:"network_passphrase,omitempty"`

	// FEDERATION_SERVER resolves stellar addresses via SEP-2.
	FederationServer *URI `toml:"FEDERATION_SERVER,omitempty" json:"federation_server,omitempty" yaml:"federation_server,omitempty"`

	// AUTH_SERVER is the SEP-3 compliance endpoint.
	AuthServer *URI `toml:"AUTH_SERVER,omitempty" json:"auth_server,omitempty" yaml:"auth_server,omitempty"`

	// TRANSFER_SERVER is the SEP-6 deposit/withdrawal endpoint.
	TransferServer *URI `toml:"TRANSFER_SERVER,omitempty" json:"transfer_server,omitempty" yaml:"transfer_server,omitempty"`

	// TRANSFER_SERVER_SEP0024 is the SEP-24 interactive deposit/withdrawal endpoint.
	TransferServerSep24 *URI `toml:"TRANSFER_SERVER_SEP0024,omitempty" json:"transfer_server_sep0024,omitempty" yaml:"transfer_server_sep0024,omitempty"`

	// KYC_SERVER is the SEP-12 customer info endpoint.
	KYCServer *URI `toml:"KYC_SERVER,omitempty" json:"kyc_server,omitempty" yaml:"kyc_server,omitempty"`

	// WEB_AUTH_ENDPOINT is the SEP-10 web authentication endpoint.
	WebAuthEndpoint *URI `toml:"WEB_AUTH_ENDPOINT,omitempty" json:"web_auth_endpoint,omitempty" yaml:"web_auth_endpoint,omitempty"`

	// SIGNING_KEY signs SEP-3 and SEP-10 messages.
	SigningKey *PublicKey `toml:"SIGNING_KEY,omitempty" json:"signing_key,omitempty" yaml:"signing_key,omitempty"`

	// HORIZON_URL is the organization's public Horizon instance, if any.
	HorizonURL string `toml:"HORIZON_URL,omitempty" json:"horizon_url,omitempty" yaml:"horizon_url,omitempty"`

	// ACCOUNTS lists the Stellar accounts controlled by this domain, in file order.
	Accounts []PublicKey `toml:"ACCOUNTS,omitempty" json:"accounts,omitempty" yaml:"accounts,omitempty"`

	// URI_REQUEST_SIGNING_KEY signs SEP-7 delegated signing requests.
	URIRequestSigningKey *PublicKey `toml:"URI_REQUEST_SIGNING_KEY,omitempty" json:"uri_request_signing_key,omitempty" yaml:"uri_request_signing_key,omitempty"`

	// DESC is a free-form description of the file.
	Desc string `toml:"DESC,omitempty" json:"desc,omitempty" yaml:"desc,omitempty"`

	Documentation *Documentation   `toml:"DOCUMENTATION,omitempty" json:"documentation,omitempty" yaml:"documentation,omitempty"`
	Principals    []PointOfContact `toml:"PRINCIPALS,omitempty" json:"principals,omitempty" yaml:"principals,omitempty"`
	Currencies    []Currency       `toml:"CURRENCIES,omitempty" json:"currencies,omitempty" yaml:"currencies,omitempty"`
	Validators    []Validator      `toml:"VALIDATORS,omitempty" json:"validators,omitempty" yaml:"validators,omitempty"`
}

// Documentation describes the organization behind the file.
type Documentation struct {
	OrgName                       string `toml:"ORG_NAME,omitempty" json:"org_name,omitempty" yaml:"org_name,omitempty"`
	OrgDBA                        string `toml:"ORG_DBA,omitempty" json:"org_dba,omitempty" yaml:"org_dba,omitempty"`
	OrgURL                        string `toml:"ORG_URL,omitempty" json:"org_url,omitempty" yaml:"org_url,omitempty"`
	OrgLogo                       string `toml:"ORG_LOGO,omitempty" json:"org_logo,omitempty" yaml:"org_logo,omitempty"`
	OrgDescription                string `toml:"ORG_DESCRIPTION,omitempty" json:"org_description,omitempty" yaml:"org_description,omitempty"`
	OrgPhysicalAddress            string `toml:"ORG_PHYSICAL_ADDRESS,omitempty" json:"org_physical_address,omitempty" yaml:"org_physical_address,omitempty"`
	OrgPhysicalAddressAttestation string `toml:"ORG_PHYSICAL_ADDRESS_ATTESTATION,omitempty" json:"org_physical_address_attestation,omitempty" yaml:"org_physical_address_attestation,omitempty"`
	OrgPhoneNumber                string `toml:"ORG_PHONE_NUMBER,omitempty" json:"org_phone_number,omitempty" yaml:"org_phone_number,omitempty"`
	OrgPhoneNumberAttestation     string `toml:"ORG_PHONE_NUMBER_ATTESTATION,omitempty" json:"org_phone_number_attestation,omitempty" yaml:"org_phone_number_attestation,omitempty"`
	OrgKeybase                    string `toml:"ORG_KEYBASE,omitempty" json:"org_keybase,omitempty" yaml:"org_keybase,omitempty"`
	OrgTwitter                    string `toml:"ORG_TWITTER,omitempty" json:"org_twitter,omitempty" yaml:"org_twitter,omitempty"`
	OrgGithub                     string `toml:"ORG_GITHUB,omitempty" json:"org_github,omitempty" yaml:"org_github,omitempty"`
	OrgOfficialEmail              string `toml:"ORG_OFFICIAL_EMAIL,omitempty" json:"org_official_email,omitempty" yaml:"org_official_email,omitempty"`
	OrgSupportEmail               string `toml:"ORG_SUPPORT_EMAIL,omitempty" json:"org_support_email,omitempty" yaml:"org_support_email,omitempty"`
	OrgLicensingAuthority         string `toml:"ORG_LICENSING_AUTHORITY,omitempty" json:"org_licensing_authority,omitempty" yaml:"org_licensing_authority,omitempty"`
	OrgLicenseType                string `toml:"ORG_LICENSE_TYPE,omitempty" json:"org_license_type,omitempty" yaml:"org_license_type,omitempty"`
	OrgLicenseNumber              string `toml:"ORG_LICENSE_NUMBER,omitempty" json:"org_license_number,omitempty" yaml:"org_license_number,omitempty"`
}

// PointOfContact identifies a principal of the organization.
type PointOfContact struct {
	Name                  string `toml:"name,omitempty" json:"name,omitempty" yaml:"name,omitempty"`
	Email                 string `toml:"email,omitempty" json:"email,omitempty" yaml:"email,omitempty"`
	Keybase               string `toml:"keybase,omitempty" json:"keybase,omitempty" yaml:"keybase,omitempty"`
	Telegram              string `toml:"telegram,omitempty" json:"telegram,omitempty" yaml:"telegram,omitempty"`
	Twitter               string `toml:"twitter,omitempty" json:"twitter,omitempty" yaml:"twitter,omitempty"`
	Github                string `toml:"github,omitempty" json:"github,omitempty" yaml:"github,omitempty"`
	IDPhotoHash           string `toml:"id_photo_hash,omitempty" json:"id_photo_hash,omitempty" yaml:"id_photo_hash,omitempty"`
	VerificationPhotoHash string `toml:"verification_photo_hash,omitempty" json:"verification_photo_hash,omitempty" yaml:"verification_photo_hash,omitempty"`
}

// CurrencyStatus marks whether a token is listed on live exchanges.
type CurrencyStatus string

const (
	StatusLive    CurrencyStatus = "live"
	StatusDead    CurrencyStatus = "dead"
	StatusTest    CurrencyStatus = "test"
	StatusPrivate CurrencyStatus = "private"
)

// CurrencyStatuses lists the valid CurrencyStatus values.
var CurrencyStatuses = []CurrencyStatus{StatusLive, StatusDead, StatusTest, StatusPrivate}

// AnchorAssetType is the kind of asset an anchored token redeems for.
type AnchorAssetType string

const (
	AnchorFiat       AnchorAssetType = "fiat"
	AnchorCrypto     AnchorAssetType = "crypto"
	AnchorNFT        AnchorAssetType = "nft"
	AnchorStock      AnchorAssetType = "stock"
	AnchorBond       AnchorAssetType = "bond"
	AnchorCommodity  AnchorAssetType = "commodity"
	AnchorRealEstate AnchorAssetType = "realestate"
	AnchorOther      AnchorAssetType = "other"
)

// AnchorAssetTypes lists the valid AnchorAssetType values.
var AnchorAssetTypes = []AnchorAssetType{
	AnchorFiat, AnchorCrypto, AnchorNFT, AnchorStock,
	AnchorBond, AnchorCommodity, AnchorRealEstate, AnchorOther,
}

// Currency describes a Stellar asset issued or supported by the organization.
// Code (or CodeTemplate) and Issuer are always set on a parsed Currency.
type Currency struct {
	// Code is the asset code (e.g., "USDC", "BTC").
	Code string `toml:"code,omitempty" json:"code,omitempty" yaml:"code,omitempty"`

	// CodeTemplate matches several codes, '?' being a single character
	// wildcard (e.g. "CORN????????").
	CodeTemplate string `toml:"code_template,omitempty" json:"code_template,omitempty" yaml:"code_template,omitempty"`

	// Issuer is the account that issues the asset.
	Issuer PublicKey `toml:"issuer" json:"issuer" yaml:"issuer"`

	Status          CurrencyStatus `toml:"status,omitempty" json:"status,omitempty" yaml:"status,omitempty"`
	DisplayDecimals *int           `toml:"display_decimals,omitempty" json:"display_decimals,omitempty" yaml:"display_decimals,omitempty"`
	Name            string         `toml:"name,omitempty" json:"name,omitempty" yaml:"name,omitempty"`
	Desc            string         `toml:"desc,omitempty" json:"desc,omitempty" yaml:"desc,omitempty"`
	Conditions      string         `toml:"conditions,omitempty" json:"conditions,omitempty" yaml:"conditions,omitempty"`
	Image           *URI           `toml:"image,omitempty" json:"image,omitempty" yaml:"image,omitempty"`

	// FixedNumber is set when the number of tokens issued will never change.
	FixedNumber *int64 `toml:"fixed_number,omitempty" json:"fixed_number,omitempty" yaml:"fixed_number,omitempty"`
	// MaxNumber caps the number of tokens that will ever exist.
	MaxNumber   *int64 `toml:"max_number,omitempty" json:"max_number,omitempty" yaml:"max_number,omitempty"`
	IsUnlimited *bool  `toml:"is_unlimited,omitempty" json:"is_unlimited,omitempty" yaml:"is_unlimited,omitempty"`

	IsAssetAnchored        *bool           `toml:"is_asset_anchored,omitempty" json:"is_asset_anchored,omitempty" yaml:"is_asset_anchored,omitempty"`
	AnchorAssetType        AnchorAssetType `toml:"anchor_asset_type,omitempty" json:"anchor_asset_type,omitempty" yaml:"anchor_asset_type,omitempty"`
	AnchorAsset            string          `toml:"anchor_asset,omitempty" json:"anchor_asset,omitempty" yaml:"anchor_asset,omitempty"`
	RedemptionInstructions string          `toml:"redemption_instructions,omitempty" json:"redemption_instructions,omitempty" yaml:"redemption_instructions,omitempty"`

	// Collateral fields are parallel lists: the i-th message and signature
	// belong to the i-th address. Signatures are carried, not verified.
	CollateralAddresses         []string `toml:"collateral_addresses,omitempty" json:"collateral_addresses,omitempty" yaml:"collateral_addresses,omitempty"`
	CollateralAddressMessages   []string `toml:"collateral_address_messages,omitempty" json:"collateral_address_messages,omitempty" yaml:"collateral_address_messages,omitempty"`
	CollateralAddressSignatures []string `toml:"collateral_address_signatures,omitempty" json:"collateral_address_signatures,omitempty" yaml:"collateral_address_signatures,omitempty"`

	// Regulated marks a SEP-8 regulated asset.
	Regulated        *bool  `toml:"regulated,omitempty" json:"regulated,omitempty" yaml:"regulated,omitempty"`
	ApprovalServer   *URI   `toml:"approval_server,omitempty" json:"approval_server,omitempty" yaml:"approval_server,omitempty"`
	ApprovalCriteria string `toml:"approval_criteria,omitempty" json:"approval_criteria,omitempty" yaml:"approval_criteria,omitempty"`
}

// Validator describes a stellar-core node run by the organization.
type Validator struct {
	// Alias is the short name used in stellar-core configs. Always set.
	Alias       string     `toml:"ALIAS" json:"alias" yaml:"alias"`
	DisplayName string     `toml:"DISPLAY_NAME,omitempty" json:"display_name,omitempty" yaml:"display_name,omitempty"`
	PublicKey   *PublicKey `toml:"PUBLIC_KEY,omitempty" json:"public_key,omitempty" yaml:"public_key,omitempty"`
	// Host is the IP:port or domain:port peers connect to.
	Host    string `toml:"HOST,omitempty" json:"host,omitempty" yaml:"host,omitempty"`
	History *URI   `toml:"HISTORY,omitempty" json:"history,omitempty" yaml:"history,omitempty"`
}
