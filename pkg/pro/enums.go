package pro

type WithdrawalTypeEnum string

const (
	WithdrawalTypeEnumByEmail  WithdrawalTypeEnum = "by_email"
	WithdrawalTypeEnumInApp    WithdrawalTypeEnum = "in_app"
	WithdrawalTypeEnumNoTicket WithdrawalTypeEnum = "no_ticket"
	WithdrawalTypeEnumOnSite   WithdrawalTypeEnum = "on_site"
)

func (w WithdrawalTypeEnum) IsValid() bool {
	switch w {
	case WithdrawalTypeEnumByEmail,
		WithdrawalTypeEnumInApp,
		WithdrawalTypeEnumNoTicket,
		WithdrawalTypeEnumOnSite:
		return true
	}
	return false
}

func (w WithdrawalTypeEnum) String() string {
	return string(w)
}

// Enum lists the wire values for schema generation.
func (WithdrawalTypeEnum) Enum() []interface{} {
	return []interface{}{WithdrawalTypeEnumByEmail, WithdrawalTypeEnumInApp, WithdrawalTypeEnumNoTicket, WithdrawalTypeEnumOnSite}
}

type VenueTypeCode string

const (
	VenueTypeCodeAutre                                    VenueTypeCode = "Autre"
	VenueTypeCodeArtsVisuelsArtsPlastiquesEtGaleries      VenueTypeCode = "Arts visuels, arts plastiques et galeries"
	VenueTypeCodeBibliothequeOuMediatheque                VenueTypeCode = "Bibliothèque ou médiathèque"
	VenueTypeCodeCentreCulturel                           VenueTypeCode = "Centre culturel"
	VenueTypeCodeCinemaSalleDeProjections                 VenueTypeCode = "Cinéma - Salle de projections"
	VenueTypeCodeCinemaItinerant                          VenueTypeCode = "Cinéma itinérant"
	VenueTypeCodeCoursEtPratiqueArtistiques               VenueTypeCode = "Cours et pratique artistiques"
	VenueTypeCodeCultureScientifique                      VenueTypeCode = "Culture scientifique"
	VenueTypeCodeFestival                                 VenueTypeCode = "Festival"
	VenueTypeCodeJeuxJeuxVideos                           VenueTypeCode = "Jeux / Jeux vidéos"
	VenueTypeCodeLibrairie                                VenueTypeCode = "Librairie"
	VenueTypeCodeMagasinArtsCreatifs                      VenueTypeCode = "Magasin arts créatifs"
	VenueTypeCodeMagasinDeDistributionDeProduitsCulturels VenueTypeCode = "Magasin de distribution de produits culturels"
	VenueTypeCodeMusiqueDisquaire                         VenueTypeCode = "Musique - Disquaire"
	VenueTypeCodeMusiqueMagasinDinstruments               VenueTypeCode = "Musique - Magasin d’instruments"
	VenueTypeCodeMusiqueSalleDeConcerts                   VenueTypeCode = "Musique - Salle de concerts"
	VenueTypeCodeMusee                                    VenueTypeCode = "Musée"
	VenueTypeCodeOffreNumerique                           VenueTypeCode = "Offre numérique"
	VenueTypeCodePatrimoineEtTourisme                     VenueTypeCode = "Patrimoine et tourisme"
	VenueTypeCodeSpectacleVivant                          VenueTypeCode = "Spectacle vivant"
)

func (v VenueTypeCode) IsValid() bool {
	switch v {
	case VenueTypeCodeAutre,
		VenueTypeCodeArtsVisuelsArtsPlastiquesEtGaleries,
		VenueTypeCodeBibliothequeOuMediatheque,
		VenueTypeCodeCentreCulturel,
		VenueTypeCodeCinemaSalleDeProjections,
		VenueTypeCodeCinemaItinerant,
		VenueTypeCodeCoursEtPratiqueArtistiques,
		VenueTypeCodeCultureScientifique,
		VenueTypeCodeFestival,
		VenueTypeCodeJeuxJeuxVideos,
		VenueTypeCodeLibrairie,
		VenueTypeCodeMagasinArtsCreatifs,
		VenueTypeCodeMagasinDeDistributionDeProduitsCulturels,
		VenueTypeCodeMusiqueDisquaire,
		VenueTypeCodeMusiqueMagasinDinstruments,
		VenueTypeCodeMusiqueSalleDeConcerts,
		VenueTypeCodeMusee,
		VenueTypeCodeOffreNumerique,
		VenueTypeCodePatrimoineEtTourisme,
		VenueTypeCodeSpectacleVivant:
		return true
	}
	return false
}

func (v VenueTypeCode) String() string {
	return string(v)
}

// Enum lists the wire values for schema generation.
func (VenueTypeCode) Enum() []interface{} {
	return []interface{}{VenueTypeCodeAutre, VenueTypeCodeArtsVisuelsArtsPlastiquesEtGaleries, VenueTypeCodeBibliothequeOuMediatheque, VenueTypeCodeCentreCulturel, VenueTypeCodeCinemaSalleDeProjections, VenueTypeCodeCinemaItinerant, VenueTypeCodeCoursEtPratiqueArtistiques, VenueTypeCodeCultureScientifique, VenueTypeCodeFestival, VenueTypeCodeJeuxJeuxVideos, VenueTypeCodeLibrairie, VenueTypeCodeMagasinArtsCreatifs, VenueTypeCodeMagasinDeDistributionDeProduitsCulturels, VenueTypeCodeMusiqueDisquaire, VenueTypeCodeMusiqueMagasinDinstruments, VenueTypeCodeMusiqueSalleDeConcerts, VenueTypeCodeMusee, VenueTypeCodeOffreNumerique, VenueTypeCodePatrimoineEtTourisme, VenueTypeCodeSpectacleVivant}
}

type UserRole string

const (
	UserRoleAdmin               UserRole = "ADMIN"
	UserRoleAnonymized          UserRole = "ANONYMIZED"
	UserRoleBeneficiary         UserRole = "BENEFICIARY"
	UserRoleUnderageBeneficiary UserRole = "UNDERAGE_BENEFICIARY"
	UserRoleFreeBeneficiary     UserRole = "FREE_BENEFICIARY"
	UserRolePro                 UserRole = "PRO"
	UserRoleNonAttachedPro      UserRole = "NON_ATTACHED_PRO"
	UserRoleTest                UserRole = "TEST"
)

func (u UserRole) IsValid() bool {
	switch u {
	case UserRoleAdmin,
		UserRoleAnonymized,
		UserRoleBeneficiary,
		UserRoleUnderageBeneficiary,
		UserRoleFreeBeneficiary,
		UserRolePro,
		UserRoleNonAttachedPro,
		UserRoleTest:
		return true
	}
	return false
}

func (u UserRole) String() string {
	return string(u)
}

// Enum lists the wire values for schema generation.
func (UserRole) Enum() []interface{} {
	return []interface{}{UserRoleAdmin, UserRoleAnonymized, UserRoleBeneficiary, UserRoleUnderageBeneficiary, UserRoleFreeBeneficiary, UserRolePro, UserRoleNonAttachedPro, UserRoleTest}
}

type Target string

const (
	TargetEducational              Target = "EDUCATIONAL"
	TargetIndividualAndEducational Target = "INDIVIDUAL_AND_EDUCATIONAL"
	TargetIndividual               Target = "INDIVIDUAL"
)

func (t Target) IsValid() bool {
	switch t {
	case TargetEducational,
		TargetIndividualAndEducational,
		TargetIndividual:
		return true
	}
	return false
}

func (t Target) String() string {
	return string(t)
}

// Enum lists the wire values for schema generation.
func (Target) Enum() []interface{} {
	return []interface{}{TargetEducational, TargetIndividualAndEducational, TargetIndividual}
}

type SubcategoryIdEnum string

const (
	SubcategoryIdEnumAboBibliotheque              SubcategoryIdEnum = "ABO_BIBLIOTHEQUE"
	SubcategoryIdEnumAboConcert                   SubcategoryIdEnum = "ABO_CONCERT"
	SubcategoryIdEnumAboJeuVideo                  SubcategoryIdEnum = "ABO_JEU_VIDEO"
	SubcategoryIdEnumAboLivreNumerique            SubcategoryIdEnum = "ABO_LIVRE_NUMERIQUE"
	SubcategoryIdEnumAboLudotheque                SubcategoryIdEnum = "ABO_LUDOTHEQUE"
	SubcategoryIdEnumAboMediatheque               SubcategoryIdEnum = "ABO_MEDIATHEQUE"
	SubcategoryIdEnumAboPlateformeMusique         SubcategoryIdEnum = "ABO_PLATEFORME_MUSIQUE"
	SubcategoryIdEnumAboPlateformeVideo           SubcategoryIdEnum = "ABO_PLATEFORME_VIDEO"
	SubcategoryIdEnumAboPratiqueArt               SubcategoryIdEnum = "ABO_PRATIQUE_ART"
	SubcategoryIdEnumAboPresseEnLigne             SubcategoryIdEnum = "ABO_PRESSE_EN_LIGNE"
	SubcategoryIdEnumAboSpectacle                 SubcategoryIdEnum = "ABO_SPECTACLE"
	SubcategoryIdEnumAchatInstrument              SubcategoryIdEnum = "ACHAT_INSTRUMENT"
	SubcategoryIdEnumActivationEvent              SubcategoryIdEnum = "ACTIVATION_EVENT"
	SubcategoryIdEnumActivationThing              SubcategoryIdEnum = "ACTIVATION_THING"
	SubcategoryIdEnumAppCulturelle                SubcategoryIdEnum = "APP_CULTURELLE"
	SubcategoryIdEnumAtelierPratiqueArt           SubcategoryIdEnum = "ATELIER_PRATIQUE_ART"
	SubcategoryIdEnumAutreSupportNumerique        SubcategoryIdEnum = "AUTRE_SUPPORT_NUMERIQUE"
	SubcategoryIdEnumBonAchatInstrument           SubcategoryIdEnum = "BON_ACHAT_INSTRUMENT"
	SubcategoryIdEnumCaptationMusique             SubcategoryIdEnum = "CAPTATION_MUSIQUE"
	SubcategoryIdEnumCarteCineIllimite            SubcategoryIdEnum = "CARTE_CINE_ILLIMITE"
	SubcategoryIdEnumCarteCineMultiseances        SubcategoryIdEnum = "CARTE_CINE_MULTISEANCES"
	SubcategoryIdEnumCarteJeunes                  SubcategoryIdEnum = "CARTE_JEUNES"
	SubcategoryIdEnumCarteMusee                   SubcategoryIdEnum = "CARTE_MUSEE"
	SubcategoryIdEnumCinePleinAir                 SubcategoryIdEnum = "CINE_PLEIN_AIR"
	SubcategoryIdEnumCineVenteDistance            SubcategoryIdEnum = "CINE_VENTE_DISTANCE"
	SubcategoryIdEnumConcert                      SubcategoryIdEnum = "CONCERT"
	SubcategoryIdEnumConcours                     SubcategoryIdEnum = "CONCOURS"
	SubcategoryIdEnumConference                   SubcategoryIdEnum = "CONFERENCE"
	SubcategoryIdEnumDecouverteMetiers            SubcategoryIdEnum = "DECOUVERTE_METIERS"
	SubcategoryIdEnumEscapeGame                   SubcategoryIdEnum = "ESCAPE_GAME"
	SubcategoryIdEnumEvenementCine                SubcategoryIdEnum = "EVENEMENT_CINE"
	SubcategoryIdEnumEvenementJeu                 SubcategoryIdEnum = "EVENEMENT_JEU"
	SubcategoryIdEnumEvenementMusique             SubcategoryIdEnum = "EVENEMENT_MUSIQUE"
	SubcategoryIdEnumEvenementPatrimoine          SubcategoryIdEnum = "EVENEMENT_PATRIMOINE"
	SubcategoryIdEnumFestivalArtVisuel            SubcategoryIdEnum = "FESTIVAL_ART_VISUEL"
	SubcategoryIdEnumFestivalCine                 SubcategoryIdEnum = "FESTIVAL_CINE"
	SubcategoryIdEnumFestivalLivre                SubcategoryIdEnum = "FESTIVAL_LIVRE"
	SubcategoryIdEnumFestivalMusique              SubcategoryIdEnum = "FESTIVAL_MUSIQUE"
	SubcategoryIdEnumFestivalSpectacle            SubcategoryIdEnum = "FESTIVAL_SPECTACLE"
	SubcategoryIdEnumJeuEnLigne                   SubcategoryIdEnum = "JEU_EN_LIGNE"
	SubcategoryIdEnumJeuSupportPhysique           SubcategoryIdEnum = "JEU_SUPPORT_PHYSIQUE"
	SubcategoryIdEnumLivestreamEvenement          SubcategoryIdEnum = "LIVESTREAM_EVENEMENT"
	SubcategoryIdEnumLivestreamMusique            SubcategoryIdEnum = "LIVESTREAM_MUSIQUE"
	SubcategoryIdEnumLivestreamPratiqueArtistique SubcategoryIdEnum = "LIVESTREAM_PRATIQUE_ARTISTIQUE"
	SubcategoryIdEnumLivreAudioPhysique           SubcategoryIdEnum = "LIVRE_AUDIO_PHYSIQUE"
	SubcategoryIdEnumLivreNumerique               SubcategoryIdEnum = "LIVRE_NUMERIQUE"
	SubcategoryIdEnumLivrePapier                  SubcategoryIdEnum = "LIVRE_PAPIER"
	SubcategoryIdEnumLocationInstrument           SubcategoryIdEnum = "LOCATION_INSTRUMENT"
	SubcategoryIdEnumMaterielArtCreatif           SubcategoryIdEnum = "MATERIEL_ART_CREATIF"
	SubcategoryIdEnumMuseeVenteDistance           SubcategoryIdEnum = "MUSEE_VENTE_DISTANCE"
	SubcategoryIdEnumOeuvreArt                    SubcategoryIdEnum = "OEUVRE_ART"
	SubcategoryIdEnumPartition                    SubcategoryIdEnum = "PARTITION"
	SubcategoryIdEnumPlateformePratiqueArtistique SubcategoryIdEnum = "PLATEFORME_PRATIQUE_ARTISTIQUE"
	SubcategoryIdEnumPratiqueArtVenteDistance     SubcategoryIdEnum = "PRATIQUE_ART_VENTE_DISTANCE"
	SubcategoryIdEnumPodcast                      SubcategoryIdEnum = "PODCAST"
	SubcategoryIdEnumRencontreEnLigne             SubcategoryIdEnum = "RENCONTRE_EN_LIGNE"
	SubcategoryIdEnumRencontreJeu                 SubcategoryIdEnum = "RENCONTRE_JEU"
	SubcategoryIdEnumRencontre                    SubcategoryIdEnum = "RENCONTRE"
	SubcategoryIdEnumSalon                        SubcategoryIdEnum = "SALON"
	SubcategoryIdEnumSeanceCine                   SubcategoryIdEnum = "SEANCE_CINE"
	SubcategoryIdEnumSeanceEssaiPratiqueArt       SubcategoryIdEnum = "SEANCE_ESSAI_PRATIQUE_ART"
	SubcategoryIdEnumSpectacleEnregistre          SubcategoryIdEnum = "SPECTACLE_ENREGISTRE"
	SubcategoryIdEnumSpectacleRepresentation      SubcategoryIdEnum = "SPECTACLE_REPRESENTATION"
	SubcategoryIdEnumSpectacleVenteDistance       SubcategoryIdEnum = "SPECTACLE_VENTE_DISTANCE"
	SubcategoryIdEnumSupportPhysiqueFilm          SubcategoryIdEnum = "SUPPORT_PHYSIQUE_FILM"
	SubcategoryIdEnumSupportPhysiqueMusiqueCd     SubcategoryIdEnum = "SUPPORT_PHYSIQUE_MUSIQUE_CD"
	SubcategoryIdEnumSupportPhysiqueMusiqueVinyle SubcategoryIdEnum = "SUPPORT_PHYSIQUE_MUSIQUE_VINYLE"
	SubcategoryIdEnumTelechargementLivreAudio     SubcategoryIdEnum = "TELECHARGEMENT_LIVRE_AUDIO"
	SubcategoryIdEnumTelechargementMusique        SubcategoryIdEnum = "TELECHARGEMENT_MUSIQUE"
	SubcategoryIdEnumVisiteGuidee                 SubcategoryIdEnum = "VISITE_GUIDEE"
	SubcategoryIdEnumVisiteVirtuelle              SubcategoryIdEnum = "VISITE_VIRTUELLE"
	SubcategoryIdEnumVisite                       SubcategoryIdEnum = "VISITE"
	SubcategoryIdEnumVod                          SubcategoryIdEnum = "VOD"
)

func (s SubcategoryIdEnum) IsValid() bool {
	switch s {
	case SubcategoryIdEnumAboBibliotheque,
		SubcategoryIdEnumAboConcert,
		SubcategoryIdEnumAboJeuVideo,
		SubcategoryIdEnumAboLivreNumerique,
		SubcategoryIdEnumAboLudotheque,
		SubcategoryIdEnumAboMediatheque,
		SubcategoryIdEnumAboPlateformeMusique,
		SubcategoryIdEnumAboPlateformeVideo,
		SubcategoryIdEnumAboPratiqueArt,
		SubcategoryIdEnumAboPresseEnLigne,
		SubcategoryIdEnumAboSpectacle,
		SubcategoryIdEnumAchatInstrument,
		SubcategoryIdEnumActivationEvent,
		SubcategoryIdEnumActivationThing,
		SubcategoryIdEnumAppCulturelle,
		SubcategoryIdEnumAtelierPratiqueArt,
		SubcategoryIdEnumAutreSupportNumerique,
		SubcategoryIdEnumBonAchatInstrument,
		SubcategoryIdEnumCaptationMusique,
		SubcategoryIdEnumCarteCineIllimite,
		SubcategoryIdEnumCarteCineMultiseances,
		SubcategoryIdEnumCarteJeunes,
		SubcategoryIdEnumCarteMusee,
		SubcategoryIdEnumCinePleinAir,
		SubcategoryIdEnumCineVenteDistance,
		SubcategoryIdEnumConcert,
		SubcategoryIdEnumConcours,
		SubcategoryIdEnumConference,
		SubcategoryIdEnumDecouverteMetiers,
		SubcategoryIdEnumEscapeGame,
		SubcategoryIdEnumEvenementCine,
		SubcategoryIdEnumEvenementJeu,
		SubcategoryIdEnumEvenementMusique,
		SubcategoryIdEnumEvenementPatrimoine,
		SubcategoryIdEnumFestivalArtVisuel,
		SubcategoryIdEnumFestivalCine,
		SubcategoryIdEnumFestivalLivre,
		SubcategoryIdEnumFestivalMusique,
		SubcategoryIdEnumFestivalSpectacle,
		SubcategoryIdEnumJeuEnLigne,
		SubcategoryIdEnumJeuSupportPhysique,
		SubcategoryIdEnumLivestreamEvenement,
		SubcategoryIdEnumLivestreamMusique,
		SubcategoryIdEnumLivestreamPratiqueArtistique,
		SubcategoryIdEnumLivreAudioPhysique,
		SubcategoryIdEnumLivreNumerique,
		SubcategoryIdEnumLivrePapier,
		SubcategoryIdEnumLocationInstrument,
		SubcategoryIdEnumMaterielArtCreatif,
		SubcategoryIdEnumMuseeVenteDistance,
		SubcategoryIdEnumOeuvreArt,
		SubcategoryIdEnumPartition,
		SubcategoryIdEnumPlateformePratiqueArtistique,
		SubcategoryIdEnumPratiqueArtVenteDistance,
		SubcategoryIdEnumPodcast,
		SubcategoryIdEnumRencontreEnLigne,
		SubcategoryIdEnumRencontreJeu,
		SubcategoryIdEnumRencontre,
		SubcategoryIdEnumSalon,
		SubcategoryIdEnumSeanceCine,
		SubcategoryIdEnumSeanceEssaiPratiqueArt,
		SubcategoryIdEnumSpectacleEnregistre,
		SubcategoryIdEnumSpectacleRepresentation,
		SubcategoryIdEnumSpectacleVenteDistance,
		SubcategoryIdEnumSupportPhysiqueFilm,
		SubcategoryIdEnumSupportPhysiqueMusiqueCd,
		SubcategoryIdEnumSupportPhysiqueMusiqueVinyle,
		SubcategoryIdEnumTelechargementLivreAudio,
		SubcategoryIdEnumTelechargementMusique,
		SubcategoryIdEnumVisiteGuidee,
		SubcategoryIdEnumVisiteVirtuelle,
		SubcategoryIdEnumVisite,
		SubcategoryIdEnumVod:
		return true
	}
	return false
}

func (s SubcategoryIdEnum) String() string {
	return string(s)
}

// Enum lists the wire values for schema generation.
func (SubcategoryIdEnum) Enum() []interface{} {
	return []interface{}{SubcategoryIdEnumAboBibliotheque, SubcategoryIdEnumAboConcert, SubcategoryIdEnumAboJeuVideo, SubcategoryIdEnumAboLivreNumerique, SubcategoryIdEnumAboLudotheque, SubcategoryIdEnumAboMediatheque, SubcategoryIdEnumAboPlateformeMusique, SubcategoryIdEnumAboPlateformeVideo, SubcategoryIdEnumAboPratiqueArt, SubcategoryIdEnumAboPresseEnLigne, SubcategoryIdEnumAboSpectacle, SubcategoryIdEnumAchatInstrument, SubcategoryIdEnumActivationEvent, SubcategoryIdEnumActivationThing, SubcategoryIdEnumAppCulturelle, SubcategoryIdEnumAtelierPratiqueArt, SubcategoryIdEnumAutreSupportNumerique, SubcategoryIdEnumBonAchatInstrument, SubcategoryIdEnumCaptationMusique, SubcategoryIdEnumCarteCineIllimite, SubcategoryIdEnumCarteCineMultiseances, SubcategoryIdEnumCarteJeunes, SubcategoryIdEnumCarteMusee, SubcategoryIdEnumCinePleinAir, SubcategoryIdEnumCineVenteDistance, SubcategoryIdEnumConcert, SubcategoryIdEnumConcours, SubcategoryIdEnumConference, SubcategoryIdEnumDecouverteMetiers, SubcategoryIdEnumEscapeGame, SubcategoryIdEnumEvenementCine, SubcategoryIdEnumEvenementJeu, SubcategoryIdEnumEvenementMusique, SubcategoryIdEnumEvenementPatrimoine, SubcategoryIdEnumFestivalArtVisuel, SubcategoryIdEnumFestivalCine, SubcategoryIdEnumFestivalLivre, SubcategoryIdEnumFestivalMusique, SubcategoryIdEnumFestivalSpectacle, SubcategoryIdEnumJeuEnLigne, SubcategoryIdEnumJeuSupportPhysique, SubcategoryIdEnumLivestreamEvenement, SubcategoryIdEnumLivestreamMusique, SubcategoryIdEnumLivestreamPratiqueArtistique, SubcategoryIdEnumLivreAudioPhysique, SubcategoryIdEnumLivreNumerique, SubcategoryIdEnumLivrePapier, SubcategoryIdEnumLocationInstrument, SubcategoryIdEnumMaterielArtCreatif, SubcategoryIdEnumMuseeVenteDistance, SubcategoryIdEnumOeuvreArt, SubcategoryIdEnumPartition, SubcategoryIdEnumPlateformePratiqueArtistique, SubcategoryIdEnumPratiqueArtVenteDistance, SubcategoryIdEnumPodcast, SubcategoryIdEnumRencontreEnLigne, SubcategoryIdEnumRencontreJeu, SubcategoryIdEnumRencontre, SubcategoryIdEnumSalon, SubcategoryIdEnumSeanceCine, SubcategoryIdEnumSeanceEssaiPratiqueArt, SubcategoryIdEnumSpectacleEnregistre, SubcategoryIdEnumSpectacleRepresentation, SubcategoryIdEnumSpectacleVenteDistance, SubcategoryIdEnumSupportPhysiqueFilm, SubcategoryIdEnumSupportPhysiqueMusiqueCd, SubcategoryIdEnumSupportPhysiqueMusiqueVinyle, SubcategoryIdEnumTelechargementLivreAudio, SubcategoryIdEnumTelechargementMusique, SubcategoryIdEnumVisiteGuidee, SubcategoryIdEnumVisiteVirtuelle, SubcategoryIdEnumVisite, SubcategoryIdEnumVod}
}

type StudentLevels string

const (
	StudentLevelsValueEcolesMarseilleMaternelle StudentLevels = "Écoles Marseille - Maternelle"
	StudentLevelsValueEcolesMarseilleCpce1Ce2   StudentLevels = "Écoles Marseille - CP, CE1, CE2"
	StudentLevelsValueEcolesMarseilleCm1Cm2     StudentLevels = "Écoles Marseille - CM1, CM2"
	StudentLevelsCollege6E                      StudentLevels = "Collège - 6e"
	StudentLevelsCollege5E                      StudentLevels = "Collège - 5e"
	StudentLevelsCollege4E                      StudentLevels = "Collège - 4e"
	StudentLevelsCollege3E                      StudentLevels = "Collège - 3e"
	StudentLevelsLyceeSeconde                   StudentLevels = "Lycée - Seconde"
	StudentLevelsLyceePremiere                  StudentLevels = "Lycée - Première"
	StudentLevelsLyceeTerminale                 StudentLevels = "Lycée - Terminale"
	StudentLevelsCap2EAnnee                     StudentLevels = "CAP - 2e année"
	StudentLevelsCap1ReAnnee                    StudentLevels = "CAP - 1re année"
)

func (s StudentLevels) IsValid() bool {
	switch s {
	case StudentLevelsValueEcolesMarseilleMaternelle,
		StudentLevelsValueEcolesMarseilleCpce1Ce2,
		StudentLevelsValueEcolesMarseilleCm1Cm2,
		StudentLevelsCollege6E,
		StudentLevelsCollege5E,
		StudentLevelsCollege4E,
		StudentLevelsCollege3E,
		StudentLevelsLyceeSeconde,
		StudentLevelsLyceePremiere,
		StudentLevelsLyceeTerminale,
		StudentLevelsCap2EAnnee,
		StudentLevelsCap1ReAnnee:
		return true
	}
	return false
}

func (s StudentLevels) String() string {
	return string(s)
}

// Enum lists the wire values for schema generation.
func (StudentLevels) Enum() []interface{} {
	return []interface{}{StudentLevelsValueEcolesMarseilleMaternelle, StudentLevelsValueEcolesMarseilleCpce1Ce2, StudentLevelsValueEcolesMarseilleCm1Cm2, StudentLevelsCollege6E, StudentLevelsCollege5E, StudentLevelsCollege4E, StudentLevelsCollege3E, StudentLevelsLyceeSeconde, StudentLevelsLyceePremiere, StudentLevelsLyceeTerminale, StudentLevelsCap2EAnnee, StudentLevelsCap1ReAnnee}
}

type StocksOrderedBy string

const (
	StocksOrderedByDate                 StocksOrderedBy = "DATE"
	StocksOrderedByTime                 StocksOrderedBy = "TIME"
	StocksOrderedByBeginningDatetime    StocksOrderedBy = "BEGINNING_DATETIME"
	StocksOrderedByPriceCategoryID      StocksOrderedBy = "PRICE_CATEGORY_ID"
	StocksOrderedByBookingLimitDatetime StocksOrderedBy = "BOOKING_LIMIT_DATETIME"
	StocksOrderedByRemainingQuantity    StocksOrderedBy = "REMAINING_QUANTITY"
	StocksOrderedByDnBookedQuantity     StocksOrderedBy = "DN_BOOKED_QUANTITY"
)

func (s StocksOrderedBy) IsValid() bool {
	switch s {
	case StocksOrderedByDate,
		StocksOrderedByTime,
		StocksOrderedByBeginningDatetime,
		StocksOrderedByPriceCategoryID,
		StocksOrderedByBookingLimitDatetime,
		StocksOrderedByRemainingQuantity,
		StocksOrderedByDnBookedQuantity:
		return true
	}
	return false
}

func (s StocksOrderedBy) String() string {
	return string(s)
}

// Enum lists the wire values for schema generation.
func (StocksOrderedBy) Enum() []interface{} {
	return []interface{}{StocksOrderedByDate, StocksOrderedByTime, StocksOrderedByBeginningDatetime, StocksOrderedByPriceCategoryID, StocksOrderedByBookingLimitDatetime, StocksOrderedByRemainingQuantity, StocksOrderedByDnBookedQuantity}
}

type SimplifiedBankAccountStatus string

const (
	SimplifiedBankAccountStatusPending            SimplifiedBankAccountStatus = "pending"
	SimplifiedBankAccountStatusValid              SimplifiedBankAccountStatus = "valid"
	SimplifiedBankAccountStatusPendingCorrections SimplifiedBankAccountStatus = "pending_corrections"
)

func (s SimplifiedBankAccountStatus) IsValid() bool {
	switch s {
	case SimplifiedBankAccountStatusPending,
		SimplifiedBankAccountStatusValid,
		SimplifiedBankAccountStatusPendingCorrections:
		return true
	}
	return false
}

func (s SimplifiedBankAccountStatus) String() string {
	return string(s)
}

// Enum lists the wire values for schema generation.
func (SimplifiedBankAccountStatus) Enum() []interface{} {
	return []interface{}{SimplifiedBankAccountStatusPending, SimplifiedBankAccountStatusValid, SimplifiedBankAccountStatusPendingCorrections}
}

type PhoneValidationStatusType string

const (
	PhoneValidationStatusTypeSkippedBySupport PhoneValidationStatusType = "skipped-by-support"
	PhoneValidationStatusTypeUnvalidated      PhoneValidationStatusType = "unvalidated"
	PhoneValidationStatusTypeValidated        PhoneValidationStatusType = "validated"
)

func (p PhoneValidationStatusType) IsValid() bool {
	switch p {
	case PhoneValidationStatusTypeSkippedBySupport,
		PhoneValidationStatusTypeUnvalidated,
		PhoneValidationStatusTypeValidated:
		return true
	}
	return false
}

func (p PhoneValidationStatusType) String() string {
	return string(p)
}

// Enum lists the wire values for schema generation.
func (PhoneValidationStatusType) Enum() []interface{} {
	return []interface{}{PhoneValidationStatusTypeSkippedBySupport, PhoneValidationStatusTypeUnvalidated, PhoneValidationStatusTypeValidated}
}

type OffererMemberStatus string

const (
	OffererMemberStatusValidated OffererMemberStatus = "validated"
	OffererMemberStatusPending   OffererMemberStatus = "pending"
)

func (o OffererMemberStatus) IsValid() bool {
	switch o {
	case OffererMemberStatusValidated,
		OffererMemberStatusPending:
		return true
	}
	return false
}

func (o OffererMemberStatus) String() string {
	return string(o)
}

// Enum lists the wire values for schema generation.
func (OffererMemberStatus) Enum() []interface{} {
	return []interface{}{OffererMemberStatusValidated, OffererMemberStatusPending}
}

type OfferStatus string

const (
	OfferStatusDraft     OfferStatus = "DRAFT"
	OfferStatusPending   OfferStatus = "PENDING"
	OfferStatusRejected  OfferStatus = "REJECTED"
	OfferStatusInactive  OfferStatus = "INACTIVE"
	OfferStatusScheduled OfferStatus = "SCHEDULED"
	OfferStatusPublished OfferStatus = "PUBLISHED"
	OfferStatusActive    OfferStatus = "ACTIVE"
	OfferStatusSoldOut   OfferStatus = "SOLD_OUT"
	OfferStatusExpired   OfferStatus = "EXPIRED"
)

func (o OfferStatus) IsValid() bool {
	switch o {
	case OfferStatusDraft,
		OfferStatusPending,
		OfferStatusRejected,
		OfferStatusInactive,
		OfferStatusScheduled,
		OfferStatusPublished,
		OfferStatusActive,
		OfferStatusSoldOut,
		OfferStatusExpired:
		return true
	}
	return false
}

func (o OfferStatus) String() string {
	return string(o)
}

// Enum lists the wire values for schema generation.
func (OfferStatus) Enum() []interface{} {
	return []interface{}{OfferStatusDraft, OfferStatusPending, OfferStatusRejected, OfferStatusInactive, OfferStatusScheduled, OfferStatusPublished, OfferStatusActive, OfferStatusSoldOut, OfferStatusExpired}
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

type GetOffererAddressesWithOffersOption string

const (
	GetOffererAddressesWithOffersOptionIndividualOffersOnly         GetOffererAddressesWithOffersOption = "INDIVIDUAL_OFFERS_ONLY"
	GetOffererAddressesWithOffersOptionCollectiveOffersOnly         GetOffererAddressesWithOffersOption = "COLLECTIVE_OFFERS_ONLY"
	GetOffererAddressesWithOffersOptionCollectiveOfferTemplatesOnly GetOffererAddressesWithOffersOption = "COLLECTIVE_OFFER_TEMPLATES_ONLY"
)

func (g GetOffererAddressesWithOffersOption) IsValid() bool {
	switch g {
	case GetOffererAddressesWithOffersOptionIndividualOffersOnly,
		GetOffererAddressesWithOffersOptionCollectiveOffersOnly,
		GetOffererAddressesWithOffersOptionCollectiveOfferTemplatesOnly:
		return true
	}
	return false
}

func (g GetOffererAddressesWithOffersOption) String() string {
	return string(g)
}

// Enum lists the wire values for schema generation.
func (GetOffererAddressesWithOffersOption) Enum() []interface{} {
	return []interface{}{GetOffererAddressesWithOffersOptionIndividualOffersOnly, GetOffererAddressesWithOffersOptionCollectiveOffersOnly, GetOffererAddressesWithOffersOptionCollectiveOfferTemplatesOnly}
}

type GenderEnum string

const (
	GenderEnumM   GenderEnum = "M."
	GenderEnumMme GenderEnum = "Mme"
)

func (g GenderEnum) IsValid() bool {
	switch g {
	case GenderEnumM,
		GenderEnumMme:
		return true
	}
	return false
}

func (g GenderEnum) String() string {
	return string(g)
}

// Enum lists the wire values for schema generation.
func (GenderEnum) Enum() []interface{} {
	return []interface{}{GenderEnumM, GenderEnumMme}
}

type EacFormat string

const (
	EacFormatAtelierDePratique       EacFormat = "Atelier de pratique"
	EacFormatConcert                 EacFormat = "Concert"
	EacFormatConferenceRencontre     EacFormat = "Conférence, rencontre"
	EacFormatFestivalSalonCongres    EacFormat = "Festival, salon, congrès"
	EacFormatProjectionAudiovisuelle EacFormat = "Projection audiovisuelle"
	EacFormatRepresentation          EacFormat = "Représentation"
	EacFormatVisiteGuidee            EacFormat = "Visite guidée"
	EacFormatVisiteLibre             EacFormat = "Visite libre"
)

func (e EacFormat) IsValid() bool {
	switch e {
	case EacFormatAtelierDePratique,
		EacFormatConcert,
		EacFormatConferenceRencontre,
		EacFormatFestivalSalonCongres,
		EacFormatProjectionAudiovisuelle,
		EacFormatRepresentation,
		EacFormatVisiteGuidee,
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
	return []interface{}{EacFormatAtelierDePratique, EacFormatConcert, EacFormatConferenceRencontre, EacFormatFestivalSalonCongres, EacFormatProjectionAudiovisuelle, EacFormatRepresentation, EacFormatVisiteGuidee, EacFormatVisiteLibre}
}

type DisplayableActivity string

const (
	DisplayableActivityArtGallery                   DisplayableActivity = "ART_GALLERY"
	DisplayableActivityArtSchool                    DisplayableActivity = "ART_SCHOOL"
	DisplayableActivityArtisticCompany              DisplayableActivity = "ARTISTIC_COMPANY"
	DisplayableActivityArtsCentre                   DisplayableActivity = "ARTS_CENTRE"
	DisplayableActivityArtsEducation                DisplayableActivity = "ARTS_EDUCATION"
	DisplayableActivityBookstore                    DisplayableActivity = "BOOKSTORE"
	DisplayableActivityCinema                       DisplayableActivity = "CINEMA"
	DisplayableActivityCommunityCentre              DisplayableActivity = "COMMUNITY_CENTRE"
	DisplayableActivityCreativeArtsStore            DisplayableActivity = "CREATIVE_ARTS_STORE"
	DisplayableActivityCulturalCentre               DisplayableActivity = "CULTURAL_CENTRE"
	DisplayableActivityCulturalMediation            DisplayableActivity = "CULTURAL_MEDIATION"
	DisplayableActivityDistributionStore            DisplayableActivity = "DISTRIBUTION_STORE"
	DisplayableActivityFestival                     DisplayableActivity = "FESTIVAL"
	DisplayableActivityGamesCentre                  DisplayableActivity = "GAMES_CENTRE"
	DisplayableActivityHeritageSite                 DisplayableActivity = "HERITAGE_SITE"
	DisplayableActivityLibrary                      DisplayableActivity = "LIBRARY"
	DisplayableActivityMuseum                       DisplayableActivity = "MUSEUM"
	DisplayableActivityMusicInstrumentStore         DisplayableActivity = "MUSIC_INSTRUMENT_STORE"
	DisplayableActivityOther                        DisplayableActivity = "OTHER"
	DisplayableActivityPerformanceHall              DisplayableActivity = "PERFORMANCE_HALL"
	DisplayableActivityPress                        DisplayableActivity = "PRESS"
	DisplayableActivityProductionOrPromotionCompany DisplayableActivity = "PRODUCTION_OR_PROMOTION_COMPANY"
	DisplayableActivityRecordStore                  DisplayableActivity = "RECORD_STORE"
	DisplayableActivityScienceCentre                DisplayableActivity = "SCIENCE_CENTRE"
	DisplayableActivityStreamingPlatform            DisplayableActivity = "STREAMING_PLATFORM"
	DisplayableActivityTouristInformationCentre     DisplayableActivity = "TOURIST_INFORMATION_CENTRE"
	DisplayableActivityTravellingCinema             DisplayableActivity = "TRAVELLING_CINEMA"
)

func (d DisplayableActivity) IsValid() bool {
	switch d {
	case DisplayableActivityArtGallery,
		DisplayableActivityArtSchool,
		DisplayableActivityArtisticCompany,
		DisplayableActivityArtsCentre,
		DisplayableActivityArtsEducation,
		DisplayableActivityBookstore,
		DisplayableActivityCinema,
		DisplayableActivityCommunityCentre,
		DisplayableActivityCreativeArtsStore,
		DisplayableActivityCulturalCentre,
		DisplayableActivityCulturalMediation,
		DisplayableActivityDistributionStore,
		DisplayableActivityFestival,
		DisplayableActivityGamesCentre,
		DisplayableActivityHeritageSite,
		DisplayableActivityLibrary,
		DisplayableActivityMuseum,
		DisplayableActivityMusicInstrumentStore,
		DisplayableActivityOther,
		DisplayableActivityPerformanceHall,
		DisplayableActivityPress,
		DisplayableActivityProductionOrPromotionCompany,
		DisplayableActivityRecordStore,
		DisplayableActivityScienceCentre,
		DisplayableActivityStreamingPlatform,
		DisplayableActivityTouristInformationCentre,
		DisplayableActivityTravellingCinema:
		return true
	}
	return false
}

func (d DisplayableActivity) String() string {
	return string(d)
}

// Enum lists the wire values for schema generation.
func (DisplayableActivity) Enum() []interface{} {
	return []interface{}{DisplayableActivityArtGallery, DisplayableActivityArtSchool, DisplayableActivityArtisticCompany, DisplayableActivityArtsCentre, DisplayableActivityArtsEducation, DisplayableActivityBookstore, DisplayableActivityCinema, DisplayableActivityCommunityCentre, DisplayableActivityCreativeArtsStore, DisplayableActivityCulturalCentre, DisplayableActivityCulturalMediation, DisplayableActivityDistributionStore, DisplayableActivityFestival, DisplayableActivityGamesCentre, DisplayableActivityHeritageSite, DisplayableActivityLibrary, DisplayableActivityMuseum, DisplayableActivityMusicInstrumentStore, DisplayableActivityOther, DisplayableActivityPerformanceHall, DisplayableActivityPress, DisplayableActivityProductionOrPromotionCompany, DisplayableActivityRecordStore, DisplayableActivityScienceCentre, DisplayableActivityStreamingPlatform, DisplayableActivityTouristInformationCentre, DisplayableActivityTravellingCinema}
}

type DMSApplicationstatus string

const (
	DMSApplicationstatusAccepte        DMSApplicationstatus = "accepte"
	DMSApplicationstatusSansSuite      DMSApplicationstatus = "sans_suite"
	DMSApplicationstatusEnConstruction DMSApplicationstatus = "en_construction"
	DMSApplicationstatusRefuse         DMSApplicationstatus = "refuse"
	DMSApplicationstatusEnInstruction  DMSApplicationstatus = "en_instruction"
)

func (d DMSApplicationstatus) IsValid() bool {
	switch d {
	case DMSApplicationstatusAccepte,
		DMSApplicationstatusSansSuite,
		DMSApplicationstatusEnConstruction,
		DMSApplicationstatusRefuse,
		DMSApplicationstatusEnInstruction:
		return true
	}
	return false
}

func (d DMSApplicationstatus) String() string {
	return string(d)
}

// Enum lists the wire values for schema generation.
func (DMSApplicationstatus) Enum() []interface{} {
	return []interface{}{DMSApplicationstatusAccepte, DMSApplicationstatusSansSuite, DMSApplicationstatusEnConstruction, DMSApplicationstatusRefuse, DMSApplicationstatusEnInstruction}
}

type CollectiveOfferTemplateAllowedAction string

const (
	CollectiveOfferTemplateAllowedActionCanEditDetails         CollectiveOfferTemplateAllowedAction = "CAN_EDIT_DETAILS"
	CollectiveOfferTemplateAllowedActionCanDuplicate           CollectiveOfferTemplateAllowedAction = "CAN_DUPLICATE"
	CollectiveOfferTemplateAllowedActionCanArchive             CollectiveOfferTemplateAllowedAction = "CAN_ARCHIVE"
	CollectiveOfferTemplateAllowedActionCanCreateBookableOffer CollectiveOfferTemplateAllowedAction = "CAN_CREATE_BOOKABLE_OFFER"
	CollectiveOfferTemplateAllowedActionCanPublish             CollectiveOfferTemplateAllowedAction = "CAN_PUBLISH"
	CollectiveOfferTemplateAllowedActionCanHide                CollectiveOfferTemplateAllowedAction = "CAN_HIDE"
	CollectiveOfferTemplateAllowedActionCanShare               CollectiveOfferTemplateAllowedAction = "CAN_SHARE"
)

func (c CollectiveOfferTemplateAllowedAction) IsValid() bool {
	switch c {
	case CollectiveOfferTemplateAllowedActionCanEditDetails,
		CollectiveOfferTemplateAllowedActionCanDuplicate,
		CollectiveOfferTemplateAllowedActionCanArchive,
		CollectiveOfferTemplateAllowedActionCanCreateBookableOffer,
		CollectiveOfferTemplateAllowedActionCanPublish,
		CollectiveOfferTemplateAllowedActionCanHide,
		CollectiveOfferTemplateAllowedActionCanShare:
		return true
	}
	return false
}

func (c CollectiveOfferTemplateAllowedAction) String() string {
	return string(c)
}

// Enum lists the wire values for schema generation.
func (CollectiveOfferTemplateAllowedAction) Enum() []interface{} {
	return []interface{}{CollectiveOfferTemplateAllowedActionCanEditDetails, CollectiveOfferTemplateAllowedActionCanDuplicate, CollectiveOfferTemplateAllowedActionCanArchive, CollectiveOfferTemplateAllowedActionCanCreateBookableOffer, CollectiveOfferTemplateAllowedActionCanPublish, CollectiveOfferTemplateAllowedActionCanHide, CollectiveOfferTemplateAllowedActionCanShare}
}

type CollectiveOfferDisplayedStatus string

const (
	CollectiveOfferDisplayedStatusPublished   CollectiveOfferDisplayedStatus = "PUBLISHED"
	CollectiveOfferDisplayedStatusUnderReview CollectiveOfferDisplayedStatus = "UNDER_REVIEW"
	CollectiveOfferDisplayedStatusRejected    CollectiveOfferDisplayedStatus = "REJECTED"
	CollectiveOfferDisplayedStatusPrebooked   CollectiveOfferDisplayedStatus = "PREBOOKED"
	CollectiveOfferDisplayedStatusBooked      CollectiveOfferDisplayedStatus = "BOOKED"
	CollectiveOfferDisplayedStatusHidden      CollectiveOfferDisplayedStatus = "HIDDEN"
	CollectiveOfferDisplayedStatusExpired     CollectiveOfferDisplayedStatus = "EXPIRED"
	CollectiveOfferDisplayedStatusEnded       CollectiveOfferDisplayedStatus = "ENDED"
	CollectiveOfferDisplayedStatusCancelled   CollectiveOfferDisplayedStatus = "CANCELLED"
	CollectiveOfferDisplayedStatusReimbursed  CollectiveOfferDisplayedStatus = "REIMBURSED"
	CollectiveOfferDisplayedStatusArchived    CollectiveOfferDisplayedStatus = "ARCHIVED"
	CollectiveOfferDisplayedStatusDraft       CollectiveOfferDisplayedStatus = "DRAFT"
)

func (c CollectiveOfferDisplayedStatus) IsValid() bool {
	switch c {
	case CollectiveOfferDisplayedStatusPublished,
		CollectiveOfferDisplayedStatusUnderReview,
		CollectiveOfferDisplayedStatusRejected,
		CollectiveOfferDisplayedStatusPrebooked,
		CollectiveOfferDisplayedStatusBooked,
		CollectiveOfferDisplayedStatusHidden,
		CollectiveOfferDisplayedStatusExpired,
		CollectiveOfferDisplayedStatusEnded,
		CollectiveOfferDisplayedStatusCancelled,
		CollectiveOfferDisplayedStatusReimbursed,
		CollectiveOfferDisplayedStatusArchived,
		CollectiveOfferDisplayedStatusDraft:
		return true
	}
	return false
}

func (c CollectiveOfferDisplayedStatus) String() string {
	return string(c)
}

// Enum lists the wire values for schema generation.
func (CollectiveOfferDisplayedStatus) Enum() []interface{} {
	return []interface{}{CollectiveOfferDisplayedStatusPublished, CollectiveOfferDisplayedStatusUnderReview, CollectiveOfferDisplayedStatusRejected, CollectiveOfferDisplayedStatusPrebooked, CollectiveOfferDisplayedStatusBooked, CollectiveOfferDisplayedStatusHidden, CollectiveOfferDisplayedStatusExpired, CollectiveOfferDisplayedStatusEnded, CollectiveOfferDisplayedStatusCancelled, CollectiveOfferDisplayedStatusReimbursed, CollectiveOfferDisplayedStatusArchived, CollectiveOfferDisplayedStatusDraft}
}

type CollectiveOfferAllowedAction string

const (
	CollectiveOfferAllowedActionCanEditDetails     CollectiveOfferAllowedAction = "CAN_EDIT_DETAILS"
	CollectiveOfferAllowedActionCanEditDates       CollectiveOfferAllowedAction = "CAN_EDIT_DATES"
	CollectiveOfferAllowedActionCanEditInstitution CollectiveOfferAllowedAction = "CAN_EDIT_INSTITUTION"
	CollectiveOfferAllowedActionCanEditDiscount    CollectiveOfferAllowedAction = "CAN_EDIT_DISCOUNT"
	CollectiveOfferAllowedActionCanDuplicate       CollectiveOfferAllowedAction = "CAN_DUPLICATE"
	CollectiveOfferAllowedActionCanCancel          CollectiveOfferAllowedAction = "CAN_CANCEL"
	CollectiveOfferAllowedActionCanArchive         CollectiveOfferAllowedAction = "CAN_ARCHIVE"
)

func (c CollectiveOfferAllowedAction) IsValid() bool {
	switch c {
	case CollectiveOfferAllowedActionCanEditDetails,
		CollectiveOfferAllowedActionCanEditDates,
		CollectiveOfferAllowedActionCanEditInstitution,
		CollectiveOfferAllowedActionCanEditDiscount,
		CollectiveOfferAllowedActionCanDuplicate,
		CollectiveOfferAllowedActionCanCancel,
		CollectiveOfferAllowedActionCanArchive:
		return true
	}
	return false
}

func (c CollectiveOfferAllowedAction) String() string {
	return string(c)
}

// Enum lists the wire values for schema generation.
func (CollectiveOfferAllowedAction) Enum() []interface{} {
	return []interface{}{CollectiveOfferAllowedActionCanEditDetails, CollectiveOfferAllowedActionCanEditDates, CollectiveOfferAllowedActionCanEditInstitution, CollectiveOfferAllowedActionCanEditDiscount, CollectiveOfferAllowedActionCanDuplicate, CollectiveOfferAllowedActionCanCancel, CollectiveOfferAllowedActionCanArchive}
}

type CollectiveLocationType string

const (
	CollectiveLocationTypeSchool      CollectiveLocationType = "SCHOOL"
	CollectiveLocationTypeAddress     CollectiveLocationType = "ADDRESS"
	CollectiveLocationTypeToBeDefined CollectiveLocationType = "TO_BE_DEFINED"
)

func (c CollectiveLocationType) IsValid() bool {
	switch c {
	case CollectiveLocationTypeSchool,
		CollectiveLocationTypeAddress,
		CollectiveLocationTypeToBeDefined:
		return true
	}
	return false
}

func (c CollectiveLocationType) String() string {
	return string(c)
}

// Enum lists the wire values for schema generation.
func (CollectiveLocationType) Enum() []interface{} {
	return []interface{}{CollectiveLocationTypeSchool, CollectiveLocationTypeAddress, CollectiveLocationTypeToBeDefined}
}

type CollectiveBookingStatus string

const (
	CollectiveBookingStatusPending    CollectiveBookingStatus = "PENDING"
	CollectiveBookingStatusConfirmed  CollectiveBookingStatus = "CONFIRMED"
	CollectiveBookingStatusUsed       CollectiveBookingStatus = "USED"
	CollectiveBookingStatusCancelled  CollectiveBookingStatus = "CANCELLED"
	CollectiveBookingStatusReimbursed CollectiveBookingStatus = "REIMBURSED"
)

func (c CollectiveBookingStatus) IsValid() bool {
	switch c {
	case CollectiveBookingStatusPending,
		CollectiveBookingStatusConfirmed,
		CollectiveBookingStatusUsed,
		CollectiveBookingStatusCancelled,
		CollectiveBookingStatusReimbursed:
		return true
	}
	return false
}

func (c CollectiveBookingStatus) String() string {
	return string(c)
}

// Enum lists the wire values for schema generation.
func (CollectiveBookingStatus) Enum() []interface{} {
	return []interface{}{CollectiveBookingStatusPending, CollectiveBookingStatusConfirmed, CollectiveBookingStatusUsed, CollectiveBookingStatusCancelled, CollectiveBookingStatusReimbursed}
}

type CollectiveBookingCancellationReasons string

const (
	CollectiveBookingCancellationReasonsOfferer                             CollectiveBookingCancellationReasons = "OFFERER"
	CollectiveBookingCancellationReasonsBeneficiary                         CollectiveBookingCancellationReasons = "BENEFICIARY"
	CollectiveBookingCancellationReasonsExpired                             CollectiveBookingCancellationReasons = "EXPIRED"
	CollectiveBookingCancellationReasonsFraud                               CollectiveBookingCancellationReasons = "FRAUD"
	CollectiveBookingCancellationReasonsFraudSuspicion                      CollectiveBookingCancellationReasons = "FRAUD_SUSPICION"
	CollectiveBookingCancellationReasonsFraudInappropriate                  CollectiveBookingCancellationReasons = "FRAUD_INAPPROPRIATE"
	CollectiveBookingCancellationReasonsRefusedByInstitute                  CollectiveBookingCancellationReasons = "REFUSED_BY_INSTITUTE"
	CollectiveBookingCancellationReasonsRefusedByHeadmaster                 CollectiveBookingCancellationReasons = "REFUSED_BY_HEADMASTER"
	CollectiveBookingCancellationReasonsPublicAPI                           CollectiveBookingCancellationReasons = "PUBLIC_API"
	CollectiveBookingCancellationReasonsFinanceIncident                     CollectiveBookingCancellationReasons = "FINANCE_INCIDENT"
	CollectiveBookingCancellationReasonsBackoffice                          CollectiveBookingCancellationReasons = "BACKOFFICE"
	CollectiveBookingCancellationReasonsBackofficeEventCancelled            CollectiveBookingCancellationReasons = "BACKOFFICE_EVENT_CANCELLED"
	CollectiveBookingCancellationReasonsBackofficeOfferModified             CollectiveBookingCancellationReasons = "BACKOFFICE_OFFER_MODIFIED"
	CollectiveBookingCancellationReasonsBackofficeOfferWithWrongInformation CollectiveBookingCancellationReasons = "BACKOFFICE_OFFER_WITH_WRONG_INFORMATION"
	CollectiveBookingCancellationReasonsBackofficeOffererBusinessClosed     CollectiveBookingCancellationReasons = "BACKOFFICE_OFFERER_BUSINESS_CLOSED"
	CollectiveBookingCancellationReasonsOffererConnectAs                    CollectiveBookingCancellationReasons = "OFFERER_CONNECT_AS"
	CollectiveBookingCancellationReasonsOffererClosed                       CollectiveBookingCancellationReasons = "OFFERER_CLOSED"
)

func (c CollectiveBookingCancellationReasons) IsValid() bool {
	switch c {
	case CollectiveBookingCancellationReasonsOfferer,
		CollectiveBookingCancellationReasonsBeneficiary,
		CollectiveBookingCancellationReasonsExpired,
		CollectiveBookingCancellationReasonsFraud,
		CollectiveBookingCancellationReasonsFraudSuspicion,
		CollectiveBookingCancellationReasonsFraudInappropriate,
		CollectiveBookingCancellationReasonsRefusedByInstitute,
		CollectiveBookingCancellationReasonsRefusedByHeadmaster,
		CollectiveBookingCancellationReasonsPublicAPI,
		CollectiveBookingCancellationReasonsFinanceIncident,
		CollectiveBookingCancellationReasonsBackoffice,
		CollectiveBookingCancellationReasonsBackofficeEventCancelled,
		CollectiveBookingCancellationReasonsBackofficeOfferModified,
		CollectiveBookingCancellationReasonsBackofficeOfferWithWrongInformation,
		CollectiveBookingCancellationReasonsBackofficeOffererBusinessClosed,
		CollectiveBookingCancellationReasonsOffererConnectAs,
		CollectiveBookingCancellationReasonsOffererClosed:
		return true
	}
	return false
}

func (c CollectiveBookingCancellationReasons) String() string {
	return string(c)
}

// Enum lists the wire values for schema generation.
func (CollectiveBookingCancellationReasons) Enum() []interface{} {
	return []interface{}{CollectiveBookingCancellationReasonsOfferer, CollectiveBookingCancellationReasonsBeneficiary, CollectiveBookingCancellationReasonsExpired, CollectiveBookingCancellationReasonsFraud, CollectiveBookingCancellationReasonsFraudSuspicion, CollectiveBookingCancellationReasonsFraudInappropriate, CollectiveBookingCancellationReasonsRefusedByInstitute, CollectiveBookingCancellationReasonsRefusedByHeadmaster, CollectiveBookingCancellationReasonsPublicAPI, CollectiveBookingCancellationReasonsFinanceIncident, CollectiveBookingCancellationReasonsBackoffice, CollectiveBookingCancellationReasonsBackofficeEventCancelled, CollectiveBookingCancellationReasonsBackofficeOfferModified, CollectiveBookingCancellationReasonsBackofficeOfferWithWrongInformation, CollectiveBookingCancellationReasonsBackofficeOffererBusinessClosed, CollectiveBookingCancellationReasonsOffererConnectAs, CollectiveBookingCancellationReasonsOffererClosed}
}

type BookingsExportStatusFilter string

const (
	BookingsExportStatusFilterValidated BookingsExportStatusFilter = "validated"
	BookingsExportStatusFilterAll       BookingsExportStatusFilter = "all"
)

func (b BookingsExportStatusFilter) IsValid() bool {
	switch b {
	case BookingsExportStatusFilterValidated,
		BookingsExportStatusFilterAll:
		return true
	}
	return false
}

func (b BookingsExportStatusFilter) String() string {
	return string(b)
}

// Enum lists the wire values for schema generation.
func (BookingsExportStatusFilter) Enum() []interface{} {
	return []interface{}{BookingsExportStatusFilterValidated, BookingsExportStatusFilterAll}
}

type BookingStatusFilter string

const (
	BookingStatusFilterBooked     BookingStatusFilter = "booked"
	BookingStatusFilterValidated  BookingStatusFilter = "validated"
	BookingStatusFilterReimbursed BookingStatusFilter = "reimbursed"
)

func (b BookingStatusFilter) IsValid() bool {
	switch b {
	case BookingStatusFilterBooked,
		BookingStatusFilterValidated,
		BookingStatusFilterReimbursed:
		return true
	}
	return false
}

func (b BookingStatusFilter) String() string {
	return string(b)
}

// Enum lists the wire values for schema generation.
func (BookingStatusFilter) Enum() []interface{} {
	return []interface{}{BookingStatusFilterBooked, BookingStatusFilterValidated, BookingStatusFilterReimbursed}
}

type BookingRecapStatus string

const (
	BookingRecapStatusBooked     BookingRecapStatus = "booked"
	BookingRecapStatusValidated  BookingRecapStatus = "validated"
	BookingRecapStatusCancelled  BookingRecapStatus = "cancelled"
	BookingRecapStatusReimbursed BookingRecapStatus = "reimbursed"
	BookingRecapStatusConfirmed  BookingRecapStatus = "confirmed"
	BookingRecapStatusPending    BookingRecapStatus = "pending"
)

func (b BookingRecapStatus) IsValid() bool {
	switch b {
	case BookingRecapStatusBooked,
		BookingRecapStatusValidated,
		BookingRecapStatusCancelled,
		BookingRecapStatusReimbursed,
		BookingRecapStatusConfirmed,
		BookingRecapStatusPending:
		return true
	}
	return false
}

func (b BookingRecapStatus) String() string {
	return string(b)
}

// Enum lists the wire values for schema generation.
func (BookingRecapStatus) Enum() []interface{} {
	return []interface{}{BookingRecapStatusBooked, BookingRecapStatusValidated, BookingRecapStatusCancelled, BookingRecapStatusReimbursed, BookingRecapStatusConfirmed, BookingRecapStatusPending}
}

type BookingOfferType string

const (
	BookingOfferTypeBien      BookingOfferType = "BIEN"
	BookingOfferTypeEvenement BookingOfferType = "EVENEMENT"
)

func (b BookingOfferType) IsValid() bool {
	switch b {
	case BookingOfferTypeBien,
		BookingOfferTypeEvenement:
		return true
	}
	return false
}

func (b BookingOfferType) String() string {
	return string(b)
}

// Enum lists the wire values for schema generation.
func (BookingOfferType) Enum() []interface{} {
	return []interface{}{BookingOfferTypeBien, BookingOfferTypeEvenement}
}

type BookingExportType string

const (
	BookingExportTypeCsv   BookingExportType = "csv"
	BookingExportTypeExcel BookingExportType = "excel"
)

func (b BookingExportType) IsValid() bool {
	switch b {
	case BookingExportTypeCsv,
		BookingExportTypeExcel:
		return true
	}
	return false
}

func (b BookingExportType) String() string {
	return string(b)
}

// Enum lists the wire values for schema generation.
func (BookingExportType) Enum() []interface{} {
	return []interface{}{BookingExportTypeCsv, BookingExportTypeExcel}
}

type BankAccountApplicationStatus string

const (
	BankAccountApplicationStatusEnConstruction BankAccountApplicationStatus = "en_construction"
	BankAccountApplicationStatusEnInstruction  BankAccountApplicationStatus = "en_instruction"
	BankAccountApplicationStatusAccepte        BankAccountApplicationStatus = "accepte"
	BankAccountApplicationStatusRefuse         BankAccountApplicationStatus = "refuse"
	BankAccountApplicationStatusSansSuite      BankAccountApplicationStatus = "sans_suite"
	BankAccountApplicationStatusACorriger      BankAccountApplicationStatus = "a_corriger"
)

func (b BankAccountApplicationStatus) IsValid() bool {
	switch b {
	case BankAccountApplicationStatusEnConstruction,
		BankAccountApplicationStatusEnInstruction,
		BankAccountApplicationStatusAccepte,
		BankAccountApplicationStatusRefuse,
		BankAccountApplicationStatusSansSuite,
		BankAccountApplicationStatusACorriger:
		return true
	}
	return false
}

func (b BankAccountApplicationStatus) String() string {
	return string(b)
}

// Enum lists the wire values for schema generation.
func (BankAccountApplicationStatus) Enum() []interface{} {
	return []interface{}{BankAccountApplicationStatusEnConstruction, BankAccountApplicationStatusEnInstruction, BankAccountApplicationStatusAccepte, BankAccountApplicationStatusRefuse, BankAccountApplicationStatusSansSuite, BankAccountApplicationStatusACorriger}
}

// A link Artist <> Product also bears a type
// An artist can be an author or a musician for different products
type ArtistType string

const (
	ArtistTypeAuthor        ArtistType = "author"
	ArtistTypePerformer     ArtistType = "performer"
	ArtistTypeStageDirector ArtistType = "stage_director"
)

func (a ArtistType) IsValid() bool {
	switch a {
	case ArtistTypeAuthor,
		ArtistTypePerformer,
		ArtistTypeStageDirector:
		return true
	}
	return false
}

func (a ArtistType) String() string {
	return string(a)
}

// Enum lists the wire values for schema generation.
func (ArtistType) Enum() []interface{} {
	return []interface{}{ArtistTypeAuthor, ArtistTypePerformer, ArtistTypeStageDirector}
}

type ActivityOpenToPublic string

const (
	ActivityOpenToPublicArtGallery               ActivityOpenToPublic = "ART_GALLERY"
	ActivityOpenToPublicArtSchool                ActivityOpenToPublic = "ART_SCHOOL"
	ActivityOpenToPublicArtsCentre               ActivityOpenToPublic = "ARTS_CENTRE"
	ActivityOpenToPublicBookstore                ActivityOpenToPublic = "BOOKSTORE"
	ActivityOpenToPublicCinema                   ActivityOpenToPublic = "CINEMA"
	ActivityOpenToPublicCommunityCentre          ActivityOpenToPublic = "COMMUNITY_CENTRE"
	ActivityOpenToPublicCreativeArtsStore        ActivityOpenToPublic = "CREATIVE_ARTS_STORE"
	ActivityOpenToPublicCulturalCentre           ActivityOpenToPublic = "CULTURAL_CENTRE"
	ActivityOpenToPublicDistributionStore        ActivityOpenToPublic = "DISTRIBUTION_STORE"
	ActivityOpenToPublicFestival                 ActivityOpenToPublic = "FESTIVAL"
	ActivityOpenToPublicHeritageSite             ActivityOpenToPublic = "HERITAGE_SITE"
	ActivityOpenToPublicLibrary                  ActivityOpenToPublic = "LIBRARY"
	ActivityOpenToPublicMuseum                   ActivityOpenToPublic = "MUSEUM"
	ActivityOpenToPublicMusicInstrumentStore     ActivityOpenToPublic = "MUSIC_INSTRUMENT_STORE"
	ActivityOpenToPublicOther                    ActivityOpenToPublic = "OTHER"
	ActivityOpenToPublicPerformanceHall          ActivityOpenToPublic = "PERFORMANCE_HALL"
	ActivityOpenToPublicRecordStore              ActivityOpenToPublic = "RECORD_STORE"
	ActivityOpenToPublicScienceCentre            ActivityOpenToPublic = "SCIENCE_CENTRE"
	ActivityOpenToPublicTouristInformationCentre ActivityOpenToPublic = "TOURIST_INFORMATION_CENTRE"
)

func (a ActivityOpenToPublic) IsValid() bool {
	switch a {
	case ActivityOpenToPublicArtGallery,
		ActivityOpenToPublicArtSchool,
		ActivityOpenToPublicArtsCentre,
		ActivityOpenToPublicBookstore,
		ActivityOpenToPublicCinema,
		ActivityOpenToPublicCommunityCentre,
		ActivityOpenToPublicCreativeArtsStore,
		ActivityOpenToPublicCulturalCentre,
		ActivityOpenToPublicDistributionStore,
		ActivityOpenToPublicFestival,
		ActivityOpenToPublicHeritageSite,
		ActivityOpenToPublicLibrary,
		ActivityOpenToPublicMuseum,
		ActivityOpenToPublicMusicInstrumentStore,
		ActivityOpenToPublicOther,
		ActivityOpenToPublicPerformanceHall,
		ActivityOpenToPublicRecordStore,
		ActivityOpenToPublicScienceCentre,
		ActivityOpenToPublicTouristInformationCentre:
		return true
	}
	return false
}

func (a ActivityOpenToPublic) String() string {
	return string(a)
}

// Enum lists the wire values for schema generation.
func (ActivityOpenToPublic) Enum() []interface{} {
	return []interface{}{ActivityOpenToPublicArtGallery, ActivityOpenToPublicArtSchool, ActivityOpenToPublicArtsCentre, ActivityOpenToPublicBookstore, ActivityOpenToPublicCinema, ActivityOpenToPublicCommunityCentre, ActivityOpenToPublicCreativeArtsStore, ActivityOpenToPublicCulturalCentre, ActivityOpenToPublicDistributionStore, ActivityOpenToPublicFestival, ActivityOpenToPublicHeritageSite, ActivityOpenToPublicLibrary, ActivityOpenToPublicMuseum, ActivityOpenToPublicMusicInstrumentStore, ActivityOpenToPublicOther, ActivityOpenToPublicPerformanceHall, ActivityOpenToPublicRecordStore, ActivityOpenToPublicScienceCentre, ActivityOpenToPublicTouristInformationCentre}
}

type ActivityNotOpenToPublic string

const (
	ActivityNotOpenToPublicArtisticCompany              ActivityNotOpenToPublic = "ARTISTIC_COMPANY"
	ActivityNotOpenToPublicArtsEducation                ActivityNotOpenToPublic = "ARTS_EDUCATION"
	ActivityNotOpenToPublicCulturalMediation            ActivityNotOpenToPublic = "CULTURAL_MEDIATION"
	ActivityNotOpenToPublicFestival                     ActivityNotOpenToPublic = "FESTIVAL"
	ActivityNotOpenToPublicOther                        ActivityNotOpenToPublic = "OTHER"
	ActivityNotOpenToPublicPress                        ActivityNotOpenToPublic = "PRESS"
	ActivityNotOpenToPublicProductionOrPromotionCompany ActivityNotOpenToPublic = "PRODUCTION_OR_PROMOTION_COMPANY"
	ActivityNotOpenToPublicStreamingPlatform            ActivityNotOpenToPublic = "STREAMING_PLATFORM"
	ActivityNotOpenToPublicTravellingCinema             ActivityNotOpenToPublic = "TRAVELLING_CINEMA"
)

func (a ActivityNotOpenToPublic) IsValid() bool {
	switch a {
	case ActivityNotOpenToPublicArtisticCompany,
		ActivityNotOpenToPublicArtsEducation,
		ActivityNotOpenToPublicCulturalMediation,
		ActivityNotOpenToPublicFestival,
		ActivityNotOpenToPublicOther,
		ActivityNotOpenToPublicPress,
		ActivityNotOpenToPublicProductionOrPromotionCompany,
		ActivityNotOpenToPublicStreamingPlatform,
		ActivityNotOpenToPublicTravellingCinema:
		return true
	}
	return false
}

func (a ActivityNotOpenToPublic) String() string {
	return string(a)
}

// Enum lists the wire values for schema generation.
func (ActivityNotOpenToPublic) Enum() []interface{} {
	return []interface{}{ActivityNotOpenToPublicArtisticCompany, ActivityNotOpenToPublicArtsEducation, ActivityNotOpenToPublicCulturalMediation, ActivityNotOpenToPublicFestival, ActivityNotOpenToPublicOther, ActivityNotOpenToPublicPress, ActivityNotOpenToPublicProductionOrPromotionCompany, ActivityNotOpenToPublicStreamingPlatform, ActivityNotOpenToPublicTravellingCinema}
}

type CollectiveOfferType string

const (
	CollectiveOfferTypeOffer    CollectiveOfferType = "offer"
	CollectiveOfferTypeTemplate CollectiveOfferType = "template"
)

func (c CollectiveOfferType) IsValid() bool {
	switch c {
	case CollectiveOfferTypeOffer,
		CollectiveOfferTypeTemplate:
		return true
	}
	return false
}

func (c CollectiveOfferType) String() string {
	return string(c)
}

// Enum lists the wire values for schema generation.
func (CollectiveOfferType) Enum() []interface{} {
	return []interface{}{CollectiveOfferTypeOffer, CollectiveOfferTypeTemplate}
}

// CollectiveBookingStatusFilter is the same vocabulary as BookingStatusFilter on collective endpoints.
type CollectiveBookingStatusFilter = BookingStatusFilter
