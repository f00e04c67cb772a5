package service

import "html/template"

// labelData is the substitution input for the label template. All optional
// text fields are pre-placeholdered with a dash and all images are inline
// data URIs, so the template itself stays a dumb fixed layout.
type labelData struct {
	Name          string
	Phone         string
	Address       string
	Area          string
	Postcode      string
	Date          string
	TimeLabel     string
	Note          string
	HasNote       bool
	Items         []itemRow
	AmountText    string
	PackageNumber string

	PaidBox   template.URL
	UnpaidBox template.URL

	PickupBox   template.URL
	DeliveryBox template.URL

	SlotMorningBox   template.URL
	SlotAfternoonBox template.URL
	SlotNightBox     template.URL
	SlotOther        string

	LocationQR   template.URL
	OrderBarcode template.URL
	CodeText     string

	Logo       template.URL
	MethodIcon template.URL
}

// itemRow is one line of the item table.
type itemRow struct {
	Index    int
	Name     string
	Quantity string
	Checked  bool
	CheckBox template.URL
}

// labelTemplate is the fixed 100x150mm delivery-note layout. It is a
// substitution template, not a layout engine: the page never reflows.
const labelTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<style>
    @page { size: 100mm 150mm; margin: 0; }
    * { margin: 0; padding: 0; box-sizing: border-box; }
    body {
        font-family: Arial, sans-serif;
        width: 100mm;
        height: 150mm;
        padding: 3mm;
    }
    .label { border: 2px solid black; padding: 3mm; height: 100%; }
    .header {
        text-align: center;
        font-size: 18px;
        font-weight: bold;
        border-bottom: 2px solid black;
        padding-bottom: 2mm;
        margin-bottom: 2mm;
    }
    .header img { height: 10mm; vertical-align: middle; margin-right: 2mm; }
    .row {
        display: flex;
        gap: 4mm;
        margin-bottom: 1.5mm;
        border-bottom: 1px solid black;
        padding-bottom: 1mm;
    }
    .row.plain { border: none; }
    .field { flex: 1; }
    .label-text { font-weight: bold; font-size: 10px; }
    .value { font-size: 10px; margin-top: 1px; }
    .box { height: 10px; width: 10px; vertical-align: middle; }
    table {
        width: 100%;
        border: 1px solid black;
        border-collapse: collapse;
        margin: 2mm 0;
        font-size: 10px;
    }
    th, td { border: 1px solid black; padding: 1mm; text-align: left; }
    th { background: #f0f0f0; }
    .payment { border: 1px solid black; padding: 1.5mm; margin-top: 1mm; }
    .codes {
        display: flex;
        gap: 4mm;
        align-items: center;
        justify-content: space-between;
        margin-top: 2mm;
    }
    .codes .qr img { width: 22mm; height: 22mm; }
    .codes .bar { text-align: center; }
    .codes .bar img { height: 12mm; max-width: 60mm; }
    .codes .bar .text { font-size: 9px; letter-spacing: 1px; }
</style>
</head>
<body>
<div class="label">
    <div class="header">{{if .Logo}}<img src="{{.Logo}}" alt="">{{end}}DELIVERY NOTE</div>

    <div class="row">
        <div class="field">
            <div class="label-text">Nama:</div>
            <div class="value">{{.Name}}</div>
        </div>
        <div class="field">
            <div class="label-text">No Fon:</div>
            <div class="value">{{.Phone}}</div>
        </div>
    </div>

    <div class="row">
        <div class="field">
            <div class="label-text">Alamat:</div>
            <div class="value">{{.Address}}</div>
        </div>
    </div>

    <div class="row">
        <div class="field">
            <div class="label-text">Kawasan:</div>
            <div class="value">{{.Area}}</div>
        </div>
        <div class="field">
            <div class="label-text">Poskod:</div>
            <div class="value">{{.Postcode}}</div>
        </div>
    </div>

    <div class="row">
        <div class="field">
            <div class="label-text">Tarikh:</div>
            <div class="value">{{.Date}}</div>
        </div>
        <div class="field">
            <div class="label-text">Masa:</div>
            <div class="value">{{.TimeLabel}}</div>
        </div>
        <div class="field">
            <div class="label-text">Slot:</div>
            <div class="value">
                {{if .SlotMorningBox}}<img class="box" src="{{.SlotMorningBox}}">{{end}} Pagi
                {{if .SlotAfternoonBox}}<img class="box" src="{{.SlotAfternoonBox}}">{{end}} Petang
                {{if .SlotNightBox}}<img class="box" src="{{.SlotNightBox}}">{{end}} Malam
                {{if .SlotOther}}({{.SlotOther}}){{end}}
            </div>
        </div>
    </div>

    <div class="row">
        <div class="field">
            <div class="label-text">Penghantaran:
                {{if .PickupBox}}<img class="box" src="{{.PickupBox}}">{{end}} Ambil Sendiri
                {{if .DeliveryBox}}<img class="box" src="{{.DeliveryBox}}">{{end}} Hantar
                {{if .MethodIcon}}<img class="box" src="{{.MethodIcon}}">{{end}}
            </div>
        </div>
    </div>

    {{if .HasNote}}
    <div class="row">
        <div class="field">
            <div class="label-text">Note:</div>
            <div class="value">{{.Note}}</div>
        </div>
    </div>
    {{end}}

    <table>
        <thead>
            <tr>
                <th>Order</th>
                <th>Kuantiti</th>
                <th>Check</th>
            </tr>
        </thead>
        <tbody>
            {{range .Items}}
            <tr>
                <td>{{.Index}}. {{.Name}}</td>
                <td>{{.Quantity}}</td>
                <td>{{if .CheckBox}}<img class="box" src="{{.CheckBox}}">{{end}}</td>
            </tr>
            {{end}}
        </tbody>
    </table>

    <div class="payment">
        <div class="row plain">
            <div class="field">
                <div class="label-text">Jumlah Bayaran:</div>
                <div class="value">{{.AmountText}}</div>
            </div>
            <div class="field">
                <div class="label-text">No Paket:</div>
                <div class="value">{{.PackageNumber}}</div>
            </div>
        </div>
        <div class="row plain">
            <div class="field">
                <div class="label-text">Bayaran:
                    {{if .PaidBox}}<img class="box" src="{{.PaidBox}}">{{end}} Jelas
                    {{if .UnpaidBox}}<img class="box" src="{{.UnpaidBox}}">{{end}} Belum
                </div>
            </div>
        </div>
    </div>

    <div class="codes">
        <div class="qr">{{if .LocationQR}}<img src="{{.LocationQR}}" alt="">{{end}}</div>
        <div class="bar">
            {{if .OrderBarcode}}<img src="{{.OrderBarcode}}" alt="">{{end}}
            <div class="text">{{.CodeText}}</div>
        </div>
    </div>
</div>
</body>
</html>
`
