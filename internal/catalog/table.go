package catalog

// productionMetrics is the catalog exposed outside DEVELOPMENT. Closed and
// append-only.
var productionMetrics = map[string]SemanticType{
	"hash": Text,
	"areaType": Text,
	"date": Timestamp,
	"areaName": Text,
	"areaNameLower": Text,
	"areaCode": Text,
	"covidOccupiedMVBeds": Int,
	"covidOccupiedMVBedsWeekly": Int,
	"cumAdmissions": Int,
	"cumCasesByPublishDate": Int,
	"cumPillarFourTestsByPublishDate": Int,
	"cumPillarOneTestsByPublishDate": Int,
	"cumPillarThreeTestsByPublishDate": Int,
	"cumPillarTwoTestsByPublishDate": Int,
	"cumTestsByPublishDate": Int,
	"hospitalCases": Int,
	"hospitalCases_archive": Int,
	"hospitalCasesWeekly": Int,
	"hospitalCasesWeekly_archive": Int,
	"newAdmissions": Int,
	"newAdmissions_archive": Int,
	"newAdmissionsWeekly": Int,
	"newAdmissionsWeekly_archive": Int,
	"newCasesByPublishDate": Int,
	"newPillarFourTestsByPublishDate": Int,
	"newPillarOneTestsByPublishDate": Int,
	"newPillarThreeTestsByPublishDate": Int,
	"newPillarTwoTestsByPublishDate": Int,
	"newTestsByPublishDate": Int,
	"plannedCapacityByPublishDate": Int,
	"newCasesBySpecimenDate": Int,
	"cumCasesBySpecimenDate": Int,
	"maleCases": JSONArray,
	"femaleCases": JSONArray,
	"cumAdmissionsByAge": JSONArray,
	"femaleDeaths28Days": JSONArray,
	"maleDeaths28Days": JSONArray,
	"changeInNewCasesBySpecimenDate": Int,
	"previouslyReportedNewCasesBySpecimenDate": Int,
	"cumCasesBySpecimenDateRate": Float,
	"cumCasesByPublishDateRate": Float,
	"release": Timestamp,
	"newDeathsByDeathDate": Int,
	"newDeathsByDeathDateRate": Float,
	"newDeathsByDeathDateRollingRate": Float,
	"newDeathsByDeathDateRollingSum": Int,
	"cumDeathsByDeathDate": Int,
	"cumDeathsByDeathDateRate": Float,
	"newDeathsByPublishDate": Int,
	"cumDeathsByPublishDate": Int,
	"cumDeathsByPublishDateRate": Float,
	"newDeaths28DaysByDeathDate": Int,
	"newDeaths28DaysByDeathDateRate": Float,
	"newDeaths28DaysByDeathDateRollingRate": Float,
	"newDeaths28DaysByDeathDateRollingSum": Int,
	"cumDeaths28DaysByDeathDate": Int,
	"cumDeaths28DaysByDeathDateRate": Float,
	"newDeaths28DaysByPublishDate": Int,
	"cumDeaths28DaysByPublishDate": Int,
	"cumDeaths28DaysByPublishDateRate": Float,
	"newDeaths60DaysByDeathDate": Int,
	"newDeaths60DaysByDeathDateRate": Float,
	"newDeaths60DaysByDeathDateRollingRate": Float,
	"newDeaths60DaysByDeathDateRollingSum": Int,
	"cumDeaths60DaysByDeathDate": Int,
	"cumDeaths60DaysByDeathDateRate": Float,
	"newDeaths60DaysByPublishDate": Int,
	"cumDeaths60DaysByPublishDate": Int,
	"cumDeaths60DaysByPublishDateRate": Float,
	"newOnsDeathsByRegistrationDate": Int,
	"cumOnsDeathsByRegistrationDate": Int,
	"cumOnsDeathsByRegistrationDateRate": Float,
	"capacityPillarOneTwoFour": Int,
	"newPillarOneTwoTestsByPublishDate": Int,
	"capacityPillarOneTwo": Int,
	"capacityPillarThree": Int,
	"capacityPillarOne": Int,
	"capacityPillarTwo": Int,
	"capacityPillarFour": Int,
	"cumPillarOneTwoTestsByPublishDate": Int,
	"newPCRTestsByPublishDate": Int,
	"cumPCRTestsByPublishDate": Int,
	"plannedPCRCapacityByPublishDate": Int,
	"plannedAntibodyCapacityByPublishDate": Int,
	"newAntibodyTestsByPublishDate": Int,
	"cumAntibodyTestsByPublishDate": Int,
	"alertLevel": Int,
	"transmissionRateMin": Float,
	"transmissionRateMax": Float,
	"transmissionRateGrowthRateMin": Float,
	"transmissionRateGrowthRateMax": Float,
	"newLFDTestsBySpecimenDate": Int,
	"cumLFDTestsBySpecimenDate": Int,
	"newVirusTestsByPublishDate": Int,
	"cumVirusTestsByPublishDate": Int,
	"newCasesBySpecimenDateDirection": Text,
	"newCasesBySpecimenDateChange": Int,
	"newCasesBySpecimenDateChangePercentage": Float,
	"newCasesBySpecimenDateRollingSum": Int,
	"newCasesBySpecimenDateRollingRate": Float,
	"newCasesByPublishDateDirection": Text,
	"newCasesByPublishDateChange": Int,
	"newCasesByPublishDateChangePercentage": Float,
	"newCasesByPublishDateRollingSum": Int,
	"newCasesByPublishDateRollingRate": Float,
	"newAdmissionsDirection": Text,
	"newAdmissionsChange": Int,
	"newAdmissionsChangePercentage": Float,
	"newAdmissionsRollingSum": Int,
	"newAdmissionsRollingRate": Float,
	"newDeaths28DaysByPublishDateDirection": Text,
	"newDeaths28DaysByPublishDateChange": Int,
	"newDeaths28DaysByPublishDateChangePercentage": Float,
	"newDeaths28DaysByPublishDateRollingSum": Int,
	"newDeaths28DaysByPublishDateRollingRate": Float,
	"newPCRTestsByPublishDateDirection": Text,
	"newPCRTestsByPublishDateChange": Int,
	"newPCRTestsByPublishDateChangePercentage": Float,
	"newPCRTestsByPublishDateRollingSum": Int,
	"newPCRTestsByPublishDateRollingRate": Float,
	"newVirusTestsDirection": Text,
	"newVirusTestsChange": Int,
	"newVirusTestsChangePercentage": Float,
	"newVirusTestsRollingSum": Int,
	"newVirusTestsRollingRate": Float,
	"newCasesByPublishDateAgeDemographics": JSONArray,
	"newCasesBySpecimenDateAgeDemographics": JSONArray,
	"newDeaths28DaysByDeathDateAgeDemographics": JSONArray,
	"variants": JSONArray,
	"uniqueCasePositivityBySpecimenDateRollingSum": Float,
	"uniquePeopleTestedBySpecimenDateRollingSum": Int,
	"newDailyNsoDeathsByDeathDateChange": Int,
	"newDailyNsoDeathsByDeathDateChangePercentage": Float,
	"newDailyNsoDeathsByDeathDateDirection": Text,
	"newDailyNsoDeathsByDeathDateRollingSum": Int,
	"newDailyNsoDeathsByDeathDate": Int,
	"cumDailyNsoDeathsByDeathDate": Int,
	"cumWeeklyNsoDeathsByRegDate": Int,
	"cumWeeklyNsoDeathsByRegDateRate": Float,
	"newWeeklyNsoDeathsByRegDate": Int,
	"cumWeeklyNsoCareHomeDeathsByRegDate": Int,
	"newWeeklyNsoCareHomeDeathsByRegDate": Int,
	"newPeopleReceivingFirstDose": Int,
	"cumPeopleReceivingFirstDose": Int,
	"newPeopleReceivingSecondDose": Int,
	"cumPeopleReceivingSecondDose": Int,
	"cumPeopleVaccinatedFirstDoseByPublishDate": Int,
	"cumPeopleVaccinatedSecondDoseByPublishDate": Int,
	"newPeopleVaccinatedFirstDoseByPublishDate": Int,
	"cumPeopleVaccinatedCompleteByPublishDate": Int,
	"newPeopleVaccinatedCompleteByPublishDate": Int,
	"newPeopleVaccinatedSecondDoseByPublishDate": Int,
	"weeklyPeopleVaccinatedFirstDoseByVaccinationDate": Int,
	"weeklyPeopleVaccinatedSecondDoseByVaccinationDate": Int,
	"cumPeopleVaccinatedSecondDoseByVaccinationDate": Int,
	"newCasesLFDConfirmedPCRBySpecimenDateRollingSum": Int,
	"newCasesLFDConfirmedPCRBySpecimenDate": Int,
	"newCasesLFDConfirmedPCRBySpecimenDateRollingRate": Float,
	"cumCasesLFDOnlyBySpecimenDate": Int,
	"cumCasesPCROnlyBySpecimenDate": Int,
	"newCasesPCROnlyBySpecimenDateRollingSum": Int,
	"newCasesLFDOnlyBySpecimenDateRollingRate": Float,
	"newCasesPCROnlyBySpecimenDateRollingRate": Float,
	"newCasesLFDOnlyBySpecimenDateRollingSum": Int,
	"cumCasesLFDConfirmedPCRBySpecimenDate": Int,
	"newCasesPCROnlyBySpecimenDate": Int,
	"newCasesLFDOnlyBySpecimenDate": Int,
	"newVaccinesGivenByPublishDate": Int,
	"cumVaccinesGivenByPublishDate": Int,
	"cumVaccinationFirstDoseUptakeByPublishDatePercentage": Float,
	"cumVaccinationSecondDoseUptakeByPublishDatePercentage": Float,
	"cumVaccinationCompleteCoverageByPublishDatePercentage": Float,
	"newPeopleVaccinatedFirstDoseByVaccinationDate": Int,
	"cumPeopleVaccinatedFirstDoseByVaccinationDate": Int,
	"cumVaccinationSecondDoseUptakeByVaccinationDatePercentage": Float,
	"VaccineRegisterPopulationByVaccinationDate": Int,
	"newPeopleVaccinatedSecondDoseByVaccinationDate": Int,
	"cumPeopleVaccinatedCompleteByVaccinationDate": Int,
	"cumVaccinationFirstDoseUptakeByVaccinationDatePercentage": Float,
	"cumVaccinationCompleteCoverageByVaccinationDatePercentage": Float,
	"newPeopleVaccinatedCompleteByVaccinationDate": Int,
	"vaccinationsAgeDemographics": JSONArray,
	"cumPeopleVaccinatedThirdDoseByPublishDate": Int,
	"newPeopleVaccinatedThirdDoseByPublishDate": Int,
	"cumVaccinationBoosterDoseUptakeByPublishDatePercentage": Float,
	"cumPeopleVaccinatedThirdInjectionByPublishDate": Int,
	"newPeopleVaccinatedThirdInjectionByPublishDate": Int,
	"newPeopleVaccinatedBoosterDoseByPublishDate": Int,
	"cumVaccinationThirdInjectionUptakeByPublishDatePercentage": Float,
	"cumPeopleVaccinatedBoosterDoseByPublishDate": Int,
	"cumPeopleVaccinatedAutumn22ByVaccinationDate50plus": Int,
	"cumVaccinationAutumn22UptakeByVaccinationDatePercentage50plus": Float,
	"newPeopleVaccinatedSpring23ByVaccinationDate75plus": Int,
	"cumPeopleVaccinatedSpring23ByVaccinationDate75plus": Int,
	"cumVaccinationSpring23UptakeByVaccinationDatePercentage75plus": Float,
	"newPeopleVaccinatedAutumn23ByVaccinationDate65plus": Int,
	"cumPeopleVaccinatedAutumn23ByVaccinationDate65plus": Int,
	"cumVaccinationAutumn23UptakeByVaccinationDatePercentage65plus": Float,
	"cumPCRTestsBySpecimenDate": Int,
	"newPCRTestsBySpecimenDate": Int,
	"newVirusTestsBySpecimenDate": Int,
	"newVirusTestsBySpecimenDateChange": Int,
	"newVirusTestsBySpecimenDateChangePercentage": Float,
	"newVirusTestsBySpecimenDateDirection": Text,
	"newVirusTestsBySpecimenDateRollingSum": Int,
	"newVirusTestsByPublishDateRollingSum": Int,
	"cumVirusTestsBySpecimenDate": Int,
	"cumVaccinationThirdInjectionUptakeByVaccinationDatePercentage": Float,
	"newPeopleVaccinatedThirdInjectionByVaccinationDate": Int,
	"cumPeopleVaccinatedThirdInjectionByVaccinationDate": Int,
	"cumFirstEpisodesBySpecimenDate": Int,
	"cumFirstEpisodesBySpecimenDateRate": Float,
	"cumReinfectionsBySpecimenDate": Int,
	"cumReinfectionsBySpecimenDateRate": Float,
	"newFirstEpisodesBySpecimenDate": Int,
	"newFirstEpisodesBySpecimenDateChange": Int,
	"newFirstEpisodesBySpecimenDateChangePercentage": Float,
	"newFirstEpisodesBySpecimenDateDirection": Text,
	"newFirstEpisodesBySpecimenDateRollingRate": Float,
	"newFirstEpisodesBySpecimenDateRollingSum": Int,
	"newReinfectionsBySpecimenDate": Int,
	"newReinfectionsBySpecimenDateChange": Int,
	"newReinfectionsBySpecimenDateChangePercentage": Float,
	"newReinfectionsBySpecimenDateDirection": Text,
	"newReinfectionsBySpecimenDateRollingRate": Float,
	"newReinfectionsBySpecimenDateRollingSum": Int,
	"changeInNewDeaths28DaysByDeathDate": Int,
	"previouslyReportedNewDeaths28DaysByDeathDate": Int,
	"newFirstEpisodesBySpecimenDateAgeDemographics": JSONArray,
	"newReinfectionsBySpecimenDateAgeDemographics": JSONArray,
	"newCasesPillarOneBySpecimenDate": Int,
	"newCasesPillarOneBySpecimenDateDirection": Text,
	"newCasesPillarOneBySpecimenDateChange": Int,
	"newCasesPillarOneBySpecimenDateChangePercentage": Float,
	"newCasesPillarOneBySpecimenDateRollingSum": Int,
	"newCasesPillarOneBySpecimenDateRollingRate": Float,
	"cumCasesPillarOneBySpecimenDate": Int,
	"cumCasesPillarOneBySpecimenDateRate": Float,
	"newCasesPillarTwoBySpecimenDate": Int,
	"newCasesPillarTwoBySpecimenDateDirection": Text,
	"newCasesPillarTwoBySpecimenDateChange": Int,
	"newCasesPillarTwoBySpecimenDateChangePercentage": Float,
	"newCasesPillarTwoBySpecimenDateRollingSum": Int,
	"newCasesPillarTwoBySpecimenDateRollingRate": Float,
	"cumCasesPillarTwoBySpecimenDate": Int,
	"cumCasesPillarTwoBySpecimenDateRate": Float,
	"newDeaths28DaysByDeathDateChange": Int,
	"newDeaths28DaysByDeathDateChangePercentage": Float,
	"newVirusTestsByPublishDateChange": Int,
	"newVirusTestsByPublishDateChangePercentage": Float,
}

// developmentOnlyMetrics is added on top of productionMetrics when the
// catalog is built for EnvDevelopment.
var developmentOnlyMetrics = map[string]SemanticType{
	"changeInCumCasesBySpecimenDate": Int,
	"covidOccupiedNIVBeds": Int,
	"covidOccupiedOSBeds": Int,
	"covidOccupiedOtherBeds": Int,
	"cumAdmissionsRate": Float,
	"cumDischarges": Int,
	"cumDischargesByAge": JSONArray,
	"cumDischargesRate": Float,
	"cumNegativesBySpecimenDate": Int,
	"cumOnsCareHomeDeathsByRegistrationDate": Int,
	"cumPeopleTestedByPublishDate": Int,
	"cumPeopleTestedByPublishDateRate": Float,
	"cumPeopleTestedBySpecimenDate": Int,
	"cumPillarOnePeopleTestedByPublishDate": Int,
	"cumPillarTwoPeopleTestedByPublishDate": Int,
	"femaleNegatives": JSONArray,
	"femalePeopleTested": JSONArray,
	"maleNegatives": JSONArray,
	"malePeopleTested": JSONArray,
	"newAdmissionsByAge": JSONArray,
	"newCasesBySpecimenDateRate": Float,
	"newDischarges": Int,
	"newNegativesBySpecimenDate": Int,
	"newOnsCareHomeDeathsByRegistrationDate": Int,
	"newPeopleTestedByPublishDate": Int,
	"newPeopleTestedBySpecimenDate": Int,
	"newPillarOnePeopleTestedByPublishDate": Int,
	"newPillarOneTwoFourTestsByPublishDate": Int,
	"newPillarTwoPeopleTestedByPublishDate": Int,
	"nonCovidOccupiedMVBeds": Int,
	"nonCovidOccupiedNIVBeds": Int,
	"nonCovidOccupiedOSBeds": Int,
	"nonCovidOccupiedOtherBeds": Int,
	"plannedPillarFourCapacityByPublishDate": Int,
	"plannedPillarOneCapacityByPublishDate": Int,
	"plannedPillarThreeCapacityByPublishDate": Int,
	"plannedPillarTwoCapacityByPublishDate": Int,
	"previouslyReportedCumCasesBySpecimenDate": Int,
	"releaseTimestamp": Timestamp,
	"suspectedCovidOccupiedMVBeds": Int,
	"suspectedCovidOccupiedNIVBeds": Int,
	"suspectedCovidOccupiedOSBeds": Int,
	"suspectedCovidOccupiedOtherBeds": Int,
	"totalBeds": Int,
	"totalMVBeds": Int,
	"totalNIVBeds": Int,
	"totalOSBeds": Int,
	"totalOtherBeds": Int,
	"unoccupiedMVBeds": Int,
	"unoccupiedNIVBeds": Int,
	"unoccupiedOSBeds": Int,
	"unoccupiedOtherBeds": Int,
}
