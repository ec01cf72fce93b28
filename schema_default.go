package iso8583

// fixed and lvar cut down the noise in the DefaultSchema table.
func fixed(length int, desc string) FieldSchema {
	return FieldSchema{Kind: KindFixed, FixedLength: length, Description: desc}
}

func lvar(digits int, desc string) FieldSchema {
	return FieldSchema{Kind: KindVariable, LengthDigits: digits, Description: desc}
}

// DefaultSchema returns a schema based on the ISO 8583-1:1987 standard.
// Field 1 is deliberately absent: it is the secondary bitmap indicator and
// never carries data.
func DefaultSchema() Schema {
	return Schema{
		2:   lvar(2, "Primary Account Number (PAN)"),
		3:   fixed(6, "Processing Code"),
		4:   fixed(12, "Amount, Transaction"),
		5:   fixed(12, "Amount, Settlement"),
		6:   fixed(12, "Amount, Cardholder Billing"),
		7:   fixed(10, "Transmission Date & Time"),
		8:   fixed(8, "Amount, Cardholder Billing Fee"),
		9:   fixed(8, "Conversion Rate, Settlement"),
		10:  fixed(8, "Conversion Rate, Cardholder Billing"),
		11:  fixed(6, "System Trace Audit Number (STAN)"),
		12:  fixed(6, "Time, Local Transaction"),
		13:  fixed(4, "Date, Local Transaction"),
		14:  fixed(4, "Date, Expiration"),
		15:  fixed(4, "Date, Settlement"),
		16:  fixed(4, "Date, Conversion"),
		17:  fixed(4, "Date, Capture"),
		18:  fixed(4, "Merchant Type"),
		19:  fixed(3, "Acquiring Institution Country Code"),
		20:  fixed(3, "PAN Extended, Country Code"),
		21:  fixed(3, "Forwarding Institution Country Code"),
		22:  fixed(3, "Point of Service Entry Mode"),
		23:  fixed(3, "Application PAN Sequence Number"),
		24:  fixed(3, "Network International Identifier (NII)"),
		25:  fixed(2, "Point of Service Condition Code"),
		26:  fixed(2, "Point of Service Capture Code"),
		27:  fixed(1, "Authorizing Identification Response Length"),
		28:  fixed(9, "Amount, Transaction Fee"),
		29:  fixed(9, "Amount, Settlement Fee"),
		30:  fixed(9, "Amount, Transaction Processing Fee"),
		31:  fixed(9, "Amount, Settlement Processing Fee"),
		32:  lvar(2, "Acquiring Institution Identification Code"),
		33:  lvar(2, "Forwarding Institution Identification Code"),
		34:  lvar(2, "Primary Account Number, Extended"),
		35:  lvar(2, "Track 2 Data"),
		36:  lvar(3, "Track 3 Data"),
		37:  fixed(12, "Retrieval Reference Number"),
		38:  fixed(6, "Authorization Identification Response"),
		39:  fixed(2, "Response Code"),
		40:  fixed(3, "Service Restriction Code"),
		41:  fixed(8, "Card Acceptor Terminal Identification"),
		42:  fixed(15, "Card Acceptor Identification Code"),
		43:  fixed(40, "Card Acceptor Name/Location"),
		44:  lvar(2, "Additional Response Data"),
		45:  lvar(2, "Track 1 Data"),
		46:  lvar(3, "Additional Data - ISO"),
		47:  lvar(3, "Additional Data - National"),
		48:  lvar(3, "Additional Data - Private"),
		49:  fixed(3, "Currency Code, Transaction"),
		50:  fixed(3, "Currency Code, Settlement"),
		51:  fixed(3, "Currency Code, Cardholder Billing"),
		52:  fixed(16, "Personal Identification Number Data"),
		53:  fixed(16, "Security Related Control Information"),
		54:  lvar(3, "Additional Amounts"),
		55:  lvar(3, "ICC Data (EMV)"),
		56:  lvar(3, "Reserved ISO"),
		57:  lvar(3, "Reserved National"),
		58:  lvar(3, "Reserved National"),
		59:  lvar(3, "Reserved Private"),
		60:  lvar(3, "Reserved Private"),
		61:  lvar(3, "Reserved Private"),
		62:  lvar(3, "Reserved Private"),
		63:  lvar(3, "Reserved Private"),
		64:  fixed(16, "Message Authentication Code (MAC)"),
		65:  fixed(16, "Bitmap, Extended"),
		66:  fixed(1, "Settlement Code"),
		67:  fixed(2, "Extended Payment Code"),
		68:  fixed(3, "Receiving Institution Country Code"),
		69:  fixed(3, "Settlement Institution Country Code"),
		70:  fixed(3, "Network Management Information Code"),
		71:  fixed(4, "Message Number"),
		72:  fixed(4, "Message Number, Last"),
		73:  fixed(6, "Date, Action"),
		74:  fixed(10, "Credits, Number"),
		75:  fixed(10, "Credits, Reversal Number"),
		76:  fixed(10, "Debits, Number"),
		77:  fixed(10, "Debits, Reversal Number"),
		78:  fixed(10, "Transfer, Number"),
		79:  fixed(10, "Transfer, Reversal Number"),
		80:  fixed(10, "Inquiries, Number"),
		81:  fixed(10, "Authorizations, Number"),
		82:  fixed(12, "Credits, Processing Fee Amount"),
		83:  fixed(12, "Credits, Transaction Fee Amount"),
		84:  fixed(12, "Debits, Processing Fee Amount"),
		85:  fixed(12, "Debits, Transaction Fee Amount"),
		86:  fixed(16, "Credits, Amount"),
		87:  fixed(16, "Credits, Reversal Amount"),
		88:  fixed(16, "Debits, Amount"),
		89:  fixed(16, "Debits, Reversal Amount"),
		90:  fixed(42, "Original Data Elements"),
		91:  fixed(1, "File Update Code"),
		92:  fixed(2, "File Security Code"),
		93:  fixed(5, "Response Indicator"),
		94:  fixed(7, "Service Indicator"),
		95:  fixed(42, "Replacement Amounts"),
		96:  fixed(16, "Message Security Code"),
		97:  fixed(17, "Amount, Net Settlement"),
		98:  fixed(25, "Payee"),
		99:  lvar(2, "Settlement Institution Identification Code"),
		100: lvar(2, "Receiving Institution Identification Code"),
		101: lvar(2, "File Name"),
		102: lvar(2, "Account Identification 1"),
		103: lvar(2, "Account Identification 2"),
		104: lvar(3, "Transaction Description"),
		105: lvar(3, "Reserved for ISO Use"),
		106: lvar(3, "Reserved for ISO Use"),
		107: lvar(3, "Reserved for ISO Use"),
		108: lvar(3, "Reserved for ISO Use"),
		109: lvar(3, "Reserved for ISO Use"),
		110: lvar(3, "Reserved for ISO Use"),
		111: lvar(3, "Reserved for ISO Use"),
		112: lvar(3, "Reserved for National Use"),
		113: lvar(3, "Reserved for National Use"),
		114: lvar(3, "Reserved for National Use"),
		115: lvar(3, "Reserved for National Use"),
		116: lvar(3, "Reserved for National Use"),
		117: lvar(3, "Reserved for National Use"),
		118: lvar(3, "Reserved for National Use"),
		119: lvar(3, "Reserved for National Use"),
		120: lvar(3, "Reserved for Private Use"),
		121: lvar(3, "Reserved for Private Use"),
		122: lvar(3, "Reserved for Private Use"),
		123: lvar(3, "Reserved for Private Use"),
		124: lvar(3, "Reserved for Private Use"),
		125: lvar(3, "Reserved for Private Use"),
		126: lvar(3, "Reserved for Private Use"),
		127: lvar(3, "Reserved for Private Use"),
		128: fixed(16, "Message Authentication Code (MAC)"),
	}
}
