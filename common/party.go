package common

// PostalAddress24 is a structured postal address.
type PostalAddress24 struct {
	AdrTp       *AddressType3Choice `xml:"AdrTp,omitempty" json:"AdrTp,omitempty"`
	Dept        *Max70Text          `xml:"Dept,omitempty" json:"Dept,omitempty"`
	SubDept     *Max70Text          `xml:"SubDept,omitempty" json:"SubDept,omitempty"`
	StrtNm      *Max70Text          `xml:"StrtNm,omitempty" json:"StrtNm,omitempty"`
	BldgNb      *Max16Text          `xml:"BldgNb,omitempty" json:"BldgNb,omitempty"`
	BldgNm      *Max35Text          `xml:"BldgNm,omitempty" json:"BldgNm,omitempty"`
	Flr         *Max70Text          `xml:"Flr,omitempty" json:"Flr,omitempty"`
	PstBx       *Max16Text          `xml:"PstBx,omitempty" json:"PstBx,omitempty"`
	Room        *Max70Text          `xml:"Room,omitempty" json:"Room,omitempty"`
	PstCd       *Max16Text          `xml:"PstCd,omitempty" json:"PstCd,omitempty"`
	TwnNm       *Max35Text          `xml:"TwnNm,omitempty" json:"TwnNm,omitempty"`
	TwnLctnNm   *Max35Text          `xml:"TwnLctnNm,omitempty" json:"TwnLctnNm,omitempty"`
	DstrctNm    *Max35Text          `xml:"DstrctNm,omitempty" json:"DstrctNm,omitempty"`
	CtrySubDvsn *Max35Text          `xml:"CtrySubDvsn,omitempty" json:"CtrySubDvsn,omitempty"`
	Ctry        *CountryCode        `xml:"Ctry,omitempty" json:"Ctry,omitempty"`
	AdrLine     []Max70Text         `xml:"AdrLine,omitempty" json:"AdrLine,omitempty"`
}

type AddressType3Choice struct {
	Cd    *AddressType2Code        `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *GenericIdentification30 `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (AddressType3Choice) XSDChoice() {}

// PostalAddress1 is the older, flatter address used by securities messages.
type PostalAddress1 struct {
	AdrTp       *AddressType2Code `xml:"AdrTp,omitempty" json:"AdrTp,omitempty"`
	AdrLine     []Max70Text       `xml:"AdrLine,omitempty" json:"AdrLine,omitempty"`
	StrtNm      *Max70Text        `xml:"StrtNm,omitempty" json:"StrtNm,omitempty"`
	BldgNb      *Max16Text        `xml:"BldgNb,omitempty" json:"BldgNb,omitempty"`
	PstCd       *Max16Text        `xml:"PstCd,omitempty" json:"PstCd,omitempty"`
	TwnNm       *Max35Text        `xml:"TwnNm,omitempty" json:"TwnNm,omitempty"`
	CtrySubDvsn *Max35Text        `xml:"CtrySubDvsn,omitempty" json:"CtrySubDvsn,omitempty"`
	Ctry        CountryCode       `xml:"Ctry" json:"Ctry"`
}

type NameAndAddress5 struct {
	Nm  Max350Text      `xml:"Nm" json:"Nm"`
	Adr *PostalAddress1 `xml:"Adr,omitempty" json:"Adr,omitempty"`
}

type GenericIdentification1 struct {
	Id      Max35Text  `xml:"Id" json:"Id"`
	SchmeNm *Max35Text `xml:"SchmeNm,omitempty" json:"SchmeNm,omitempty"`
	Issr    *Max35Text `xml:"Issr,omitempty" json:"Issr,omitempty"`
}

type GenericIdentification30 struct {
	Id      Exact4AlphaNumericText `xml:"Id" json:"Id"`
	Issr    Max35Text              `xml:"Issr" json:"Issr"`
	SchmeNm *Max35Text             `xml:"SchmeNm,omitempty" json:"SchmeNm,omitempty"`
}

// Contact4 holds the contact details of a party.
type Contact4 struct {
	NmPrfx    *NamePrefix2Code             `xml:"NmPrfx,omitempty" json:"NmPrfx,omitempty"`
	Nm        *Max140Text                  `xml:"Nm,omitempty" json:"Nm,omitempty"`
	PhneNb    *PhoneNumber                 `xml:"PhneNb,omitempty" json:"PhneNb,omitempty"`
	MobNb     *PhoneNumber                 `xml:"MobNb,omitempty" json:"MobNb,omitempty"`
	FaxNb     *PhoneNumber                 `xml:"FaxNb,omitempty" json:"FaxNb,omitempty"`
	EmailAdr  *Max2048Text                 `xml:"EmailAdr,omitempty" json:"EmailAdr,omitempty"`
	EmailPurp *Max35Text                   `xml:"EmailPurp,omitempty" json:"EmailPurp,omitempty"`
	JobTitl   *Max35Text                   `xml:"JobTitl,omitempty" json:"JobTitl,omitempty"`
	Rspnsblty *Max35Text                   `xml:"Rspnsblty,omitempty" json:"Rspnsblty,omitempty"`
	Dept      *Max70Text                   `xml:"Dept,omitempty" json:"Dept,omitempty"`
	Othr      []OtherContact1              `xml:"Othr,omitempty" json:"Othr,omitempty"`
	PrefrdMtd *PreferredContactMethod1Code `xml:"PrefrdMtd,omitempty" json:"PrefrdMtd,omitempty"`
}

type OtherContact1 struct {
	ChanlTp Max4Text    `xml:"ChanlTp" json:"ChanlTp"`
	Id      *Max128Text `xml:"Id,omitempty" json:"Id,omitempty"`
}

// PartyIdentification135 identifies a party by name, address or identifier.
type PartyIdentification135 struct {
	Nm        *Max140Text      `xml:"Nm,omitempty" json:"Nm,omitempty"`
	PstlAdr   *PostalAddress24 `xml:"PstlAdr,omitempty" json:"PstlAdr,omitempty"`
	Id        *Party38Choice   `xml:"Id,omitempty" json:"Id,omitempty"`
	CtryOfRes *CountryCode     `xml:"CtryOfRes,omitempty" json:"CtryOfRes,omitempty"`
	CtctDtls  *Contact4        `xml:"CtctDtls,omitempty" json:"CtctDtls,omitempty"`
}

type Party38Choice struct {
	OrgId  *OrganisationIdentification29 `xml:"OrgId,omitempty" json:"OrgId,omitempty"`
	PrvtId *PersonIdentification13       `xml:"PrvtId,omitempty" json:"PrvtId,omitempty"`
}

func (Party38Choice) XSDChoice() {}

type OrganisationIdentification29 struct {
	AnyBIC *AnyBICDec2014Identifier             `xml:"AnyBIC,omitempty" json:"AnyBIC,omitempty"`
	LEI    *LEIIdentifier                       `xml:"LEI,omitempty" json:"LEI,omitempty"`
	Othr   []GenericOrganisationIdentification1 `xml:"Othr,omitempty" json:"Othr,omitempty"`
}

type GenericOrganisationIdentification1 struct {
	Id      Max35Text                                    `xml:"Id" json:"Id"`
	SchmeNm *OrganisationIdentificationSchemeName1Choice `xml:"SchmeNm,omitempty" json:"SchmeNm,omitempty"`
	Issr    *Max35Text                                   `xml:"Issr,omitempty" json:"Issr,omitempty"`
}

type OrganisationIdentificationSchemeName1Choice struct {
	Cd    *ExternalOrganisationIdentification1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *Max35Text                               `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (OrganisationIdentificationSchemeName1Choice) XSDChoice() {}

type PersonIdentification13 struct {
	DtAndPlcOfBirth *DateAndPlaceOfBirth1          `xml:"DtAndPlcOfBirth,omitempty" json:"DtAndPlcOfBirth,omitempty"`
	Othr            []GenericPersonIdentification1 `xml:"Othr,omitempty" json:"Othr,omitempty"`
}

type DateAndPlaceOfBirth1 struct {
	BirthDt     ISODate     `xml:"BirthDt" json:"BirthDt"`
	PrvcOfBirth *Max35Text  `xml:"PrvcOfBirth,omitempty" json:"PrvcOfBirth,omitempty"`
	CityOfBirth Max35Text   `xml:"CityOfBirth" json:"CityOfBirth"`
	CtryOfBirth CountryCode `xml:"CtryOfBirth" json:"CtryOfBirth"`
}

type GenericPersonIdentification1 struct {
	Id      Max35Text                              `xml:"Id" json:"Id"`
	SchmeNm *PersonIdentificationSchemeName1Choice `xml:"SchmeNm,omitempty" json:"SchmeNm,omitempty"`
	Issr    *Max35Text                             `xml:"Issr,omitempty" json:"Issr,omitempty"`
}

type PersonIdentificationSchemeName1Choice struct {
	Cd    *ExternalPersonIdentification1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *Max35Text                         `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (PersonIdentificationSchemeName1Choice) XSDChoice() {}

// Party40Choice identifies a party either as a non-financial party or as an
// agent.
type Party40Choice struct {
	Pty *PartyIdentification135                       `xml:"Pty,omitempty" json:"Pty,omitempty"`
	Agt *BranchAndFinancialInstitutionIdentification6 `xml:"Agt,omitempty" json:"Agt,omitempty"`
}

func (Party40Choice) XSDChoice() {}

// Party44Choice identifies the sender or receiver of a business message.
type Party44Choice struct {
	OrgId *PartyIdentification135                       `xml:"OrgId,omitempty" json:"OrgId,omitempty"`
	FIId  *BranchAndFinancialInstitutionIdentification6 `xml:"FIId,omitempty" json:"FIId,omitempty"`
}

func (Party44Choice) XSDChoice() {}
