package patient

const (
	SelectPatients = `
		SELECT id, name, email, address, phone, dni, birth_date, registration_date, last_update_date
		FROM patients
		ORDER BY registration_date, id
		LIMIT $2 OFFSET $1
	`
	CountPatients = `SELECT COUNT(*) FROM patients`

	SelectPatientByID = `
		SELECT id, name, email, address, phone, dni, birth_date, registration_date, last_update_date
		FROM patients
		WHERE id = $1
	`
	SelectPatientByEmail = `
		SELECT id, name, email, address, phone, dni, birth_date, registration_date, last_update_date
		FROM patients
		WHERE email = $1
	`
	SelectPatientByDNI = `
		SELECT id, name, email, address, phone, dni, birth_date, registration_date, last_update_date
		FROM patients
		WHERE dni = $1
	`
	SelectPatientsByName = `
		SELECT id, name, email, address, phone, dni, birth_date, registration_date, last_update_date
		FROM patients
		WHERE name ILIKE '%' || $1 || '%'
		ORDER BY name, id
	`

	ExistsPatientByEmail = `SELECT EXISTS (SELECT 1 FROM patients WHERE email = $1)`
	ExistsPatientByDNI   = `SELECT EXISTS (SELECT 1 FROM patients WHERE dni = $1)`
	EmailUsedByOther     = `SELECT EXISTS (SELECT 1 FROM patients WHERE email = $1 AND id <> $2)`
	DNIUsedByOther       = `SELECT EXISTS (SELECT 1 FROM patients WHERE dni = $1 AND id <> $2)`

	InsertPatient = `
		INSERT INTO patients (name, email, address, phone, dni, birth_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING
		  id, name, email, address, phone, dni, birth_date, registration_date, last_update_date
	`
	UpdatePatientByID = `
		UPDATE patients
		SET name = $1,
		    email = $2,
		    address = $3,
		    phone = $4,
		    dni = $5,
		    birth_date = $6,
		    last_update_date = now()
		WHERE id = $7
		RETURNING
		  id, name, email, address, phone, dni, birth_date, registration_date, last_update_date
	`
	DeletePatientByID = `DELETE FROM patients WHERE id = $1`
)
