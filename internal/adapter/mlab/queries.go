package mlab

// SQL templates. %s is the table, %d a row cap. Filters go through @params.

const ndtSQL = `
SELECT
	test_id,
	DATE(test_date) AS test_date,
	client.Geo.CountryCode AS country_code,
	client.Geo.CountryName AS country_name,
	client.Geo.Region AS region,
	server.Geo.CountryCode AS server_country_code,
	download_speed_mbps,
	upload_speed_mbps,
	download_speed_mbps IS NOT NULL AS has_download,
	upload_speed_mbps IS NOT NULL AS has_upload,
	MINRTT,
	MeanRTT,
	server.Machine AS server_machine,
	client.IP AS client_ip,
	web100_log_entry.snap.Duration
FROM
	%s
WHERE
	DATE(test_date) BETWEEN DATE(@start_date) AND DATE(@end_date)`

const countriesSQL = `
SELECT DISTINCT
	client.Geo.CountryCode AS country_code,
	client.Geo.CountryName AS country_name
FROM
	%s
WHERE
	DATE(test_date) = DATE(@day)
	AND client.Geo.CountryCode IS NOT NULL
ORDER BY country_code
LIMIT %d`

const statisticsSQL = `
SELECT
	COUNT(*) AS total_tests,
	COUNTIF(download_speed_mbps IS NOT NULL) AS tests_with_download,
	COUNTIF(upload_speed_mbps IS NOT NULL) AS tests_with_upload,
	AVG(download_speed_mbps) AS avg_download_mbps,
	AVG(upload_speed_mbps) AS avg_upload_mbps,
	MIN(download_speed_mbps) AS min_download_mbps,
	MAX(download_speed_mbps) AS max_download_mbps,
	APPROX_QUANTILES(download_speed_mbps, 100)[OFFSET(50)] AS median_download_mbps
FROM
	%s
WHERE
	DATE(test_date) BETWEEN DATE(@start_date) AND DATE(@end_date)`

const byIDSQL = `
SELECT
	*
FROM
	%s
WHERE
	test_id = @test_id
LIMIT 1`
