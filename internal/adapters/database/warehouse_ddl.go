package database

// Table definitions are replaced on every emission; a run regenerates
// the dataset wholesale and the warehouse mirrors that.
var schemaDDL = []string{
	`CREATE SCHEMA IF NOT EXISTS bronze`,
	`CREATE SCHEMA IF NOT EXISTS silver`,
}

const patientsDDL = `
	DROP TABLE IF EXISTS silver.patients;
	CREATE TABLE silver.patients (
		patient_id TEXT PRIMARY KEY,
		medical_record_number TEXT NOT NULL,
		date_of_birth DATE NOT NULL,
		gender TEXT NOT NULL,
		race TEXT NOT NULL,
		ethnicity TEXT NOT NULL,
		primary_language TEXT NOT NULL,
		insurance_type TEXT NOT NULL,
		zip_code TEXT NOT NULL
	)`

const facilitiesDDL = `
	DROP TABLE IF EXISTS silver.facilities;
	CREATE TABLE silver.facilities (
		facility_id TEXT PRIMARY KEY,
		facility_name TEXT NOT NULL,
		facility_type TEXT NOT NULL,
		city TEXT NOT NULL,
		region TEXT NOT NULL,
		bed_count INTEGER NOT NULL,
		quality_rating DOUBLE PRECISION NOT NULL,
		address_line1 TEXT NOT NULL,
		zip_code TEXT NOT NULL,
		specialties JSONB NOT NULL
	)`

const providersDDL = `
	DROP TABLE IF EXISTS silver.providers;
	CREATE TABLE silver.providers (
		provider_id TEXT PRIMARY KEY,
		provider_name TEXT NOT NULL,
		specialty TEXT NOT NULL,
		facility_id TEXT NOT NULL,
		years_experience INTEGER NOT NULL,
		license_number TEXT NOT NULL,
		patient_volume_avg INTEGER NOT NULL,
		quality_rating DOUBLE PRECISION NOT NULL
	)`

const encountersDDL = `
	DROP TABLE IF EXISTS bronze.patient_encounters;
	CREATE TABLE bronze.patient_encounters (
		encounter_id TEXT PRIMARY KEY,
		patient_id TEXT NOT NULL,
		encounter_date TIMESTAMPTZ NOT NULL,
		encounter_type TEXT NOT NULL,
		facility_id TEXT NOT NULL,
		provider_id TEXT NOT NULL,
		admission_source TEXT NOT NULL,
		discharge_disposition TEXT NOT NULL,
		clinical_detail JSONB NOT NULL
	)`

const labResultsDDL = `
	DROP TABLE IF EXISTS bronze.lab_results;
	CREATE TABLE bronze.lab_results (
		lab_result_id TEXT PRIMARY KEY,
		patient_id TEXT NOT NULL,
		encounter_id TEXT NOT NULL,
		test_code TEXT NOT NULL,
		test_name TEXT NOT NULL,
		result_value DOUBLE PRECISION NOT NULL,
		reference_range TEXT NOT NULL,
		result_date TIMESTAMPTZ NOT NULL,
		lab_facility TEXT NOT NULL
	)`

const imagingStudiesDDL = `
	DROP TABLE IF EXISTS bronze.imaging_studies;
	CREATE TABLE bronze.imaging_studies (
		study_id TEXT PRIMARY KEY,
		patient_id TEXT NOT NULL,
		encounter_id TEXT NOT NULL,
		modality TEXT NOT NULL,
		study_description TEXT NOT NULL,
		study_date TIMESTAMPTZ NOT NULL,
		radiologist_id TEXT NOT NULL,
		findings TEXT NOT NULL
	)`

const medicationsDDL = `
	DROP TABLE IF EXISTS bronze.medications;
	CREATE TABLE bronze.medications (
		medication_id TEXT PRIMARY KEY,
		patient_id TEXT NOT NULL,
		encounter_id TEXT NOT NULL,
		medication_name TEXT NOT NULL,
		dosage TEXT NOT NULL,
		frequency TEXT NOT NULL,
		start_date DATE NOT NULL,
		end_date DATE NOT NULL,
		prescriber_id TEXT NOT NULL
	)`
