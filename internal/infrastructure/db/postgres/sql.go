package postgres

const insertUserSQL = `
INSERT INTO users (email, password_hash, role)
VALUES ($1, $2, $3)
RETURNING id, created_at
`

const getUserByEmailSQL = `
SELECT id, email, password_hash, role, created_at
FROM users WHERE email = $1
`

const insertEventSQL = `
INSERT INTO events (title, description, location, start_date, end_date)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, created_at
`

const updateEventSQL = `
UPDATE events SET title=$2, description=$3, location=$4, start_date=$5, end_date=$6
WHERE id=$1
`

const deleteEventSQL = `DELETE FROM events WHERE id = $1`

const getEventSQL = `
SELECT id, title, description, location, start_date, end_date, created_at
FROM events WHERE id = $1
`

const listEventsSQL = `
SELECT e.id, e.title, e.description, e.location, e.start_date, e.end_date, e.created_at,
       COALESCE(string_agg(v.name, ', ' ORDER BY v.id), '') AS volunteers
FROM events e
LEFT JOIN event_volunteers ev ON ev.event_id = e.id
LEFT JOIN volunteers v ON v.id = ev.volunteer_id
GROUP BY e.id
ORDER BY e.start_date ASC
`

const getEventVolunteersSQL = `
SELECT v.id, v.name
FROM volunteers v
INNER JOIN event_volunteers ev ON v.id = ev.volunteer_id
WHERE ev.event_id = $1
ORDER BY v.id
`

const insertEventVolunteerSQL = `
INSERT INTO event_volunteers (event_id, volunteer_id) VALUES ($1, $2)
`

const deleteEventVolunteersSQL = `DELETE FROM event_volunteers WHERE event_id = $1`

const insertVolunteerSQL = `
INSERT INTO volunteers (name, phone, email)
VALUES ($1, $2, $3)
RETURNING id, created_at
`

const updateVolunteerSQL = `
UPDATE volunteers SET name=$2, phone=$3, email=$4 WHERE id=$1
`

const deleteVolunteerSQL = `DELETE FROM volunteers WHERE id = $1`

const getVolunteerSQL = `
SELECT id, name, phone, email, created_at
FROM volunteers WHERE id = $1
`

const listVolunteersSQL = `
SELECT id, name, phone, email, created_at
FROM volunteers ORDER BY id
`

const existingVolunteerIDsSQL = `SELECT id FROM volunteers WHERE id = ANY($1)`
