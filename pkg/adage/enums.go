package adage

type AdageFrontRoles string

const (
	AdageFrontRolesRedactor AdageFrontRoles = "redactor"
	AdageFrontRolesReadonly AdageFrontRoles = "readonly"
)

func (a AdageFrontRoles) IsValid() bool {
	switch a {
	case AdageFrontRolesRedactor,
		AdageFrontRolesReadonly:
		return true
	}
	return false
}

func (a AdageFrontRoles) String() string {
	return string(a)
}

// Enum lists the wire values for schema generation.
func (AdageFrontRoles) Enum() []interface{} {
	return []interface{}{AdageFrontRolesRedactor, AdageFrontRolesReadonly}
}

type AdageHeaderLink string

const (
	AdageHeaderLinkSearch              AdageHeaderLink = "search"
	AdageHeaderLinkMyInstitutionOffers AdageHeaderLink = "my_institution_offers"
	AdageHeaderLinkAdageLink           AdageHeaderLink = "adage_link"
	AdageHeaderLinkMyFavorites         AdageHeaderLink = "my_favorites"
	AdageHeaderLinkDiscovery           AdageHeaderLink = "discovery"
)

func (a AdageHeaderLink) IsValid() bool {
	switch a {
	case AdageHeaderLinkSearch,
		AdageHeaderLinkMyInstitutionOffers,
		AdageHeaderLinkAdageLink,
		AdageHeaderLinkMyFavorites,
		AdageHeaderLinkDiscovery:
		return true
	}
	return false
}

func (a AdageHeaderLink) String() string {
	return string(a)
}

// Enum lists the wire values for schema generation.
func (AdageHeaderLink) Enum() []interface{} {
	return []interface{}{AdageHeaderLinkSearch, AdageHeaderLinkMyInstitutionOffers, AdageHeaderLinkAdageLink, AdageHeaderLinkMyFavorites, AdageHeaderLinkDiscovery}
}

type AdagePlaylistType string

const (
	AdagePlaylistTypeOffer  AdagePlaylistType = "offer"
	AdagePlaylistTypeVenue  AdagePlaylistType = "venue"
	AdagePlaylistTypeDomain AdagePlaylistType = "domain"
)

func (a AdagePlaylistType) IsValid() bool {
	switch a {
	case AdagePlaylistTypeOffer,
		AdagePlaylistTypeVenue,
		AdagePlaylistTypeDomain:
		return true
	}
	return false
}

func (a AdagePlaylistType) String() string {
	return string(a)
}

// Enum lists the wire values for schema generation.
func (AdagePlaylistType) Enum() []interface{} {
	return []interface{}{AdagePlaylistTypeOffer, AdagePlaylistTypeVenue, AdagePlaylistTypeDomain}
}

type EacFormat string

const (
	EacFormatAtelierDePratique       EacFormat = "Atelier de pratique"
	EacFormatConcert                 EacFormat = "Concert"
	EacFormatConfrenceRencontre      EacFormat = "Conférence, rencontre"
	EacFormatFestivalSalonCongrs     EacFormat = "Festival, salon, congrès"
	EacFormatProjectionAudiovisuelle EacFormat = "Projection audiovisuelle"
	EacFormatReprsentation           EacFormat = "Représentation"
	EacFormatVisiteGuide             EacFormat = "Visite guidée"
	EacFormatVisiteLibre             EacFormat = "Visite libre"
)

func (e EacFormat) IsValid() bool {
	switch e {
	case EacFormatAtelierDePratique,
		EacFormatConcert,
		EacFormatConfrenceRencontre,
		EacFormatFestivalSalonCongrs,
		EacFormatProjectionAudiovisuelle,
		EacFormatReprsentation,
		EacFormatVisiteGuide,
		EacFormatVisiteLibre:
		return true
	}
	return false
}

func (e EacFormat) String() string {
	return string(e)
}

// Enum lists the wire values for schema generation.
func (EacFormat) Enum() []interface{} {
	return []interface{}{EacFormatAtelierDePratique, EacFormatConcert, EacFormatConfrenceRencontre, EacFormatFestivalSalonCongrs, EacFormatProjectionAudiovisuelle, EacFormatReprsentation, EacFormatVisiteGuide, EacFormatVisiteLibre}
}

type InstitutionRuralLevel string

const (
	InstitutionRuralLevelGrandsCentresUrbains        InstitutionRuralLevel = "Grands centres urbains"
	InstitutionRuralLevelCeinturesUrbaines           InstitutionRuralLevel = "Ceintures urbaines"
	InstitutionRuralLevelCentresUrbainsIntermdiaires InstitutionRuralLevel = "Centres urbains intermédiaires"
	InstitutionRuralLevelPetitesVilles               InstitutionRuralLevel = "Petites villes"
	InstitutionRuralLevelBourgsRuraux                InstitutionRuralLevel = "Bourgs ruraux"
	InstitutionRuralLevelRuralHabitatDispers         InstitutionRuralLevel = "Rural à habitat dispersé"
	InstitutionRuralLevelRuralHabitatTrsDispers      InstitutionRuralLevel = "Rural à habitat très dispersé"
)

func (i InstitutionRuralLevel) IsValid() bool {
	switch i {
	case InstitutionRuralLevelGrandsCentresUrbains,
		InstitutionRuralLevelCeinturesUrbaines,
		InstitutionRuralLevelCentresUrbainsIntermdiaires,
		InstitutionRuralLevelPetitesVilles,
		InstitutionRuralLevelBourgsRuraux,
		InstitutionRuralLevelRuralHabitatDispers,
		InstitutionRuralLevelRuralHabitatTrsDispers:
		return true
	}
	return false
}

func (i InstitutionRuralLevel) String() string {
	return string(i)
}

// Enum lists the wire values for schema generation.
func (InstitutionRuralLevel) Enum() []interface{} {
	return []interface{}{InstitutionRuralLevelGrandsCentresUrbains, InstitutionRuralLevelCeinturesUrbaines, InstitutionRuralLevelCentresUrbainsIntermdiaires, InstitutionRuralLevelPetitesVilles, InstitutionRuralLevelBourgsRuraux, InstitutionRuralLevelRuralHabitatDispers, InstitutionRuralLevelRuralHabitatTrsDispers}
}

type OfferAddressType string

const (
	OfferAddressTypeOffererVenue OfferAddressType = "offererVenue"
	OfferAddressTypeSchool       OfferAddressType = "school"
	OfferAddressTypeOther        OfferAddressType = "other"
)

func (o OfferAddressType) IsValid() bool {
	switch o {
	case OfferAddressTypeOffererVenue,
		OfferAddressTypeSchool,
		OfferAddressTypeOther:
		return true
	}
	return false
}

func (o OfferAddressType) String() string {
	return string(o)
}

// Enum lists the wire values for schema generation.
func (OfferAddressType) Enum() []interface{} {
	return []interface{}{OfferAddressTypeOffererVenue, OfferAddressTypeSchool, OfferAddressTypeOther}
}

type OfferContactFormEnum string

const (
	OfferContactFormEnumForm OfferContactFormEnum = "form"
)

func (o OfferContactFormEnum) IsValid() bool {
	switch o {
	case OfferContactFormEnumForm:
		return true
	}
	return false
}

func (o OfferContactFormEnum) String() string {
	return string(o)
}

// Enum lists the wire values for schema generation.
func (OfferContactFormEnum) Enum() []interface{} {
	return []interface{}{OfferContactFormEnumForm}
}

type PaginationType string

const (
	PaginationTypeNext     PaginationType = "next"
	PaginationTypePrevious PaginationType = "previous"
)

func (p PaginationType) IsValid() bool {
	switch p {
	case PaginationTypeNext,
		PaginationTypePrevious:
		return true
	}
	return false
}

func (p PaginationType) String() string {
	return string(p)
}

// Enum lists the wire values for schema generation.
func (PaginationType) Enum() []interface{} {
	return []interface{}{PaginationTypeNext, PaginationTypePrevious}
}

type StudentLevels string

const (
	StudentLevelsColesMarseilleMaternelle StudentLevels = "Écoles Marseille - Maternelle"
	StudentLevelsColesMarseilleCpce1Ce2   StudentLevels = "Écoles Marseille - CP, CE1, CE2"
	StudentLevelsColesMarseilleCm1Cm2     StudentLevels = "Écoles Marseille - CM1, CM2"
	StudentLevelsCollge6e                 StudentLevels = "Collège - 6e"
	StudentLevelsCollge5e                 StudentLevels = "Collège - 5e"
	StudentLevelsCollge4e                 StudentLevels = "Collège - 4e"
	StudentLevelsCollge3e                 StudentLevels = "Collège - 3e"
	StudentLevelsCap1reAnne               StudentLevels = "CAP - 1re année"
	StudentLevelsCap2eAnne                StudentLevels = "CAP - 2e année"
	StudentLevelsLyceSeconde              StudentLevels = "Lycée - Seconde"
	StudentLevelsLycePremire              StudentLevels = "Lycée - Première"
	StudentLevelsLyceTerminale            StudentLevels = "Lycée - Terminale"
)

func (s StudentLevels) IsValid() bool {
	switch s {
	case StudentLevelsColesMarseilleMaternelle,
		StudentLevelsColesMarseilleCpce1Ce2,
		StudentLevelsColesMarseilleCm1Cm2,
		StudentLevelsCollge6e,
		StudentLevelsCollge5e,
		StudentLevelsCollge4e,
		StudentLevelsCollge3e,
		StudentLevelsCap1reAnne,
		StudentLevelsCap2eAnne,
		StudentLevelsLyceSeconde,
		StudentLevelsLycePremire,
		StudentLevelsLyceTerminale:
		return true
	}
	return false
}

func (s StudentLevels) String() string {
	return string(s)
}

// Enum lists the wire values for schema generation.
func (StudentLevels) Enum() []interface{} {
	return []interface{}{StudentLevelsColesMarseilleMaternelle, StudentLevelsColesMarseilleCpce1Ce2, StudentLevelsColesMarseilleCm1Cm2, StudentLevelsCollge6e, StudentLevelsCollge5e, StudentLevelsCollge4e, StudentLevelsCollge3e, StudentLevelsCap1reAnne, StudentLevelsCap2eAnne, StudentLevelsLyceSeconde, StudentLevelsLycePremire, StudentLevelsLyceTerminale}
}

type SuggestionType string

const (
	SuggestionTypeVenue         SuggestionType = "venue"
	SuggestionTypeOfferCategory SuggestionType = "offer category"
	SuggestionTypeOffer         SuggestionType = "offer"
)

func (s SuggestionType) IsValid() bool {
	switch s {
	case SuggestionTypeVenue,
		SuggestionTypeOfferCategory,
		SuggestionTypeOffer:
		return true
	}
	return false
}

func (s SuggestionType) String() string {
	return string(s)
}

// Enum lists the wire values for schema generation.
func (SuggestionType) Enum() []interface{} {
	return []interface{}{SuggestionTypeVenue, SuggestionTypeOfferCategory, SuggestionTypeOffer}
}
